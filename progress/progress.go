package progress

// Sink receives progress from the pipeline. The pipeline is sequential, so
// implementations are called from a single goroutine.
type Sink interface {
	// Phase starts a new unit of work with a known total, closing the
	// previous one.
	Phase(label string, total int)
	// Advance marks n items of the current phase as done.
	Advance(n int)
	// Message reports a user-visible line outside any phase.
	Message(text string)
	// Done closes the current phase.
	Done()
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Phase(string, int) {}
func (Discard) Advance(int)       {}
func (Discard) Message(string)    {}
func (Discard) Done()             {}

// Recorder captures sink calls for assertions in tests.
type Recorder struct {
	Phases   []string
	Advanced int
	Messages []string
}

func (r *Recorder) Phase(label string, total int) {
	r.Phases = append(r.Phases, label)
}

func (r *Recorder) Advance(n int) {
	r.Advanced += n
}

func (r *Recorder) Message(text string) {
	r.Messages = append(r.Messages, text)
}

func (r *Recorder) Done() {}

package progress

import (
	"io"
	"time"

	pretty "github.com/jedib0t/go-pretty/v6/progress"
)

// Console renders phases as terminal progress bars.
type Console struct {
	pw      pretty.Writer
	tracker *pretty.Tracker
}

func NewConsole(out io.Writer) *Console {
	pw := pretty.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetTrackerLength(40)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	go pw.Render()

	return &Console{pw: pw}
}

func (c *Console) Phase(label string, total int) {
	c.Done()
	tracker := &pretty.Tracker{Message: label, Total: int64(total)}
	c.pw.AppendTracker(tracker)
	c.tracker = tracker
}

func (c *Console) Advance(n int) {
	if c.tracker != nil {
		c.tracker.Increment(int64(n))
	}
}

func (c *Console) Message(text string) {
	c.pw.Log(text)
}

func (c *Console) Done() {
	if c.tracker != nil {
		c.tracker.MarkAsDone()
		c.tracker = nil
	}
}

// Stop closes any open phase and stops rendering. Call it before the process
// exits so the last bar is flushed.
func (c *Console) Stop() {
	c.Done()
	// give the renderer a tick to draw the final state
	time.Sleep(150 * time.Millisecond)
	c.pw.Stop()
}

package collect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"ytcollect/export"
	"ytcollect/fetch"
	"ytcollect/model"
	"ytcollect/progress"
)

// DefaultTarget is the number of ids a run tries to collect when the caller
// does not override it.
const DefaultTarget = 500

type Searcher interface {
	SearchByTopic(ctx context.Context, topic string, maxResults int) ([]model.VideoID, fetch.SearchOutcome)
}

type Enricher interface {
	Enrich(ctx context.Context, ids []model.VideoID) []model.VideoRecord
}

// Collector sequences search, enrichment and export for one topic.
type Collector struct {
	searcher  Searcher
	enricher  Enricher
	outputDir string
	target    int
	sink      progress.Sink
	logger    *slog.Logger
	now       func() time.Time
}

func NewCollector(searcher Searcher, enricher Enricher, outputDir string, target int, sink progress.Sink, logger *slog.Logger) *Collector {
	return &Collector{
		searcher:  searcher,
		enricher:  enricher,
		outputDir: outputDir,
		target:    target,
		sink:      sink,
		logger:    logger,
		now:       time.Now,
	}
}

// Run collects records for topic and writes them as one CSV file. Everything
// past initialization is fail-soft: failures shrink the result or end the run
// with a message, they never escape to the caller.
func (c *Collector) Run(ctx context.Context, topic string) {
	logger := c.logger.With(
		slog.String("run", uuid.New().String()),
		slog.String("topic", topic))
	defer func() {
		if r := recover(); r != nil {
			logger.Error("run aborted", fmt.Errorf("%v", r))
		}
	}()

	start := c.now()
	logger.Info("starting collection", slog.Int("target", c.target))
	c.sink.Message("Starting data collection process...")

	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		logger.Error("unable to create output directory", err, slog.String("dir", c.outputDir))
		return
	}

	ids, outcome := c.searcher.SearchByTopic(ctx, topic, c.target)
	if outcome != fetch.SearchCompleted {
		logger.Info("search ended early", slog.Int("collected", len(ids)), slog.Bool("truncated", outcome == fetch.SearchTruncated))
	}
	c.sink.Message(fmt.Sprintf("Total videos found: %d", len(ids)))
	if len(ids) == 0 {
		c.sink.Message("No videos found!")
		return
	}

	records := c.enricher.Enrich(ctx, ids)
	if len(records) == 0 {
		c.sink.Message("No video details could be retrieved!")
		return
	}

	path := filepath.Join(c.outputDir, export.Filename(topic, c.now()))
	if err := export.WriteFile(path, records); err != nil {
		logger.Error("unable to write output file", err, slog.String("path", path))
		return
	}

	elapsed := c.now().Sub(start)
	c.sink.Message("Data collection completed!")
	c.sink.Message(fmt.Sprintf("Total videos processed: %d", len(records)))
	c.sink.Message(fmt.Sprintf("Time taken: %.2f minutes", elapsed.Minutes()))
	c.sink.Message("Data saved to: " + path)
	logger.Info("collection finished",
		slog.Int("records", len(records)),
		slog.Duration("elapsed", elapsed),
		slog.String("path", path))
}

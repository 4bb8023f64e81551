package fetch

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"

	"ytcollect/model"
	"ytcollect/progress"
)

const (
	batchSize = 50
	// batchDelay bounds the request rate against quota limits.
	batchDelay = 100 * time.Millisecond
)

type DetailLister interface {
	ListDetails(ctx context.Context, ids []model.VideoID) ([]model.VideoDetails, error)
}

type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, id model.VideoID) model.Captions
}

type Enricher struct {
	lister   DetailLister
	captions CaptionFetcher
	limiter  *rate.Limiter
	sink     progress.Sink
	logger   *slog.Logger
}

func NewEnricher(lister DetailLister, captions CaptionFetcher, sink progress.Sink, logger *slog.Logger) *Enricher {
	return &Enricher{
		lister:   lister,
		captions: captions,
		limiter:  rate.NewLimiter(rate.Every(batchDelay), 1),
		sink:     sink,
		logger:   logger,
	}
}

// Enrich resolves details and captions for ids in batches of at most 50. A
// failed batch is logged and skipped as a whole; a failed caption lookup only
// leaves that record without text.
func (e *Enricher) Enrich(ctx context.Context, ids []model.VideoID) []model.VideoRecord {
	if len(ids) == 0 {
		return nil
	}

	e.sink.Phase("Processing videos", len(ids))
	defer e.sink.Done()

	records := make([]model.VideoRecord, 0, len(ids))
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		details, err := e.lister.ListDetails(ctx, batch)
		if err != nil {
			e.logger.Error("details batch failed", err,
				slog.Int("size", len(batch)),
				slog.Int("status", statusCode(err)))
		} else {
			for _, d := range details {
				caps := e.captions.FetchCaptions(ctx, d.ID)
				records = append(records, model.NewVideoRecord(d, caps))
				e.sink.Advance(1)
			}
		}

		if err := e.limiter.Wait(ctx); err != nil {
			break
		}
	}

	return records
}

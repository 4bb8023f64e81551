package fetch

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"
	"google.golang.org/api/googleapi"

	"ytcollect/model"
	"ytcollect/progress"
)

const maxPageSize = 50

type SearchPager interface {
	SearchPage(ctx context.Context, query string, n int64, pageToken string) ([]model.VideoID, string, error)
}

// SearchOutcome tells a caller why pagination ended.
type SearchOutcome int

const (
	// SearchCompleted means the target count was reached.
	SearchCompleted SearchOutcome = iota
	// SearchExhausted means the platform ran out of pages first.
	SearchExhausted
	// SearchTruncated means an upstream error ended pagination early and the
	// ids collected so far were kept.
	SearchTruncated
)

type Searcher struct {
	pager  SearchPager
	sink   progress.Sink
	logger *slog.Logger
}

func NewSearcher(pager SearchPager, sink progress.Sink, logger *slog.Logger) *Searcher {
	return &Searcher{
		pager:  pager,
		sink:   sink,
		logger: logger,
	}
}

// SearchByTopic pages through search results for topic until maxResults ids
// are collected or pagination ends. Upstream failure is absorbed: whatever
// was collected up to that point is returned with SearchTruncated.
func (s *Searcher) SearchByTopic(ctx context.Context, topic string, maxResults int) ([]model.VideoID, SearchOutcome) {
	if maxResults <= 0 {
		return nil, SearchCompleted
	}

	s.sink.Phase("Collecting video IDs", maxResults)
	defer s.sink.Done()

	ids := make([]model.VideoID, 0, maxResults)
	token := ""
	for len(ids) < maxResults {
		n := int64(maxResults - len(ids))
		if n > maxPageSize {
			n = maxPageSize
		}
		pageIDs, next, err := s.pager.SearchPage(ctx, topic, n, token)
		if err != nil {
			s.logger.Error("search page failed", err,
				slog.String("topic", topic),
				slog.Int("status", statusCode(err)),
				slog.Int("collected", len(ids)))
			return ids, SearchTruncated
		}
		if len(pageIDs) == 0 {
			s.sink.Message("No videos found in response")
			return ids, SearchExhausted
		}

		ids = append(ids, pageIDs...)
		s.sink.Advance(len(pageIDs))
		if len(ids) >= maxResults {
			break
		}
		if next == "" {
			s.sink.Message("No more videos available globally")
			return ids, SearchExhausted
		}
		token = next
	}

	return ids, SearchCompleted
}

func statusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}

	return 0
}

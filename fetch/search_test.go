package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"ytcollect/fetch"
	"ytcollect/model"
	"ytcollect/progress"
)

type searchPage struct {
	ids  []model.VideoID
	next string
	err  error
}

type stubPager struct {
	pages     []searchPage
	calls     int
	requested []int64
}

func (s *stubPager) SearchPage(_ context.Context, _ string, n int64, _ string) ([]model.VideoID, string, error) {
	s.calls++
	s.requested = append(s.requested, n)
	if len(s.pages) == 0 {
		return nil, "", nil
	}
	page := s.pages[0]
	s.pages = s.pages[1:]

	return page.ids, page.next, page.err
}

func videoIDs(prefix string, n int) []model.VideoID {
	ids := make([]model.VideoID, n)
	for i := range ids {
		ids[i] = model.VideoID(fmt.Sprintf("%s-%03d", prefix, i))
	}

	return ids
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func TestSearchByTopicNonPositiveTarget(t *testing.T) {
	pager := &stubPager{}
	searcher := fetch.NewSearcher(pager, progress.Discard{}, testLogger())

	for _, target := range []int{0, -1, -50} {
		ids, outcome := searcher.SearchByTopic(context.Background(), "chess", target)
		assert.Empty(t, ids)
		assert.Equal(t, fetch.SearchCompleted, outcome)
	}
	assert.Zero(t, pager.calls, "no pages may be requested for a non-positive target")
}

func TestSearchByTopicPaginates(t *testing.T) {
	pager := &stubPager{pages: []searchPage{
		{ids: videoIDs("a", 50), next: "page2"},
		{ids: videoIDs("b", 50), next: "page3"},
		{ids: videoIDs("c", 50), next: "page4"},
	}}
	searcher := fetch.NewSearcher(pager, progress.Discard{}, testLogger())

	ids, outcome := searcher.SearchByTopic(context.Background(), "chess", 120)

	require.Len(t, ids, 120)
	assert.Equal(t, fetch.SearchCompleted, outcome)
	assert.Equal(t, 3, pager.calls)
	assert.Equal(t, []int64{50, 50, 20}, pager.requested, "each page requests min(50, remaining)")
}

func TestSearchByTopicStopsWithoutToken(t *testing.T) {
	pager := &stubPager{pages: []searchPage{
		{ids: videoIDs("a", 50), next: ""},
	}}
	sink := &progress.Recorder{}
	searcher := fetch.NewSearcher(pager, sink, testLogger())

	ids, outcome := searcher.SearchByTopic(context.Background(), "chess", 500)

	assert.Len(t, ids, 50)
	assert.Equal(t, fetch.SearchExhausted, outcome)
	assert.Equal(t, 1, pager.calls, "absent cursor ends pagination after one page")
	assert.Equal(t, 50, sink.Advanced)
}

func TestSearchByTopicStopsOnEmptyPage(t *testing.T) {
	pager := &stubPager{pages: []searchPage{
		{ids: videoIDs("a", 50), next: "page2"},
		{ids: nil, next: "page3"},
	}}
	searcher := fetch.NewSearcher(pager, progress.Discard{}, testLogger())

	ids, outcome := searcher.SearchByTopic(context.Background(), "chess", 500)

	assert.Len(t, ids, 50)
	assert.Equal(t, fetch.SearchExhausted, outcome)
}

func TestSearchByTopicFailSoft(t *testing.T) {
	pager := &stubPager{pages: []searchPage{
		{ids: videoIDs("a", 50), next: "page2"},
		{err: errors.New("quota exceeded")},
	}}
	searcher := fetch.NewSearcher(pager, progress.Discard{}, testLogger())

	ids, outcome := searcher.SearchByTopic(context.Background(), "chess", 500)

	assert.Len(t, ids, 50, "partial results survive an upstream failure")
	assert.Equal(t, fetch.SearchTruncated, outcome)
	assert.Equal(t, 2, pager.calls)
}

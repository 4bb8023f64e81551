package fetch

import (
	"context"
	"strings"

	"google.golang.org/api/youtube/v3"

	"ytcollect/model"
)

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) SearchPage(ctx context.Context, query string, n int64, pageToken string) ([]model.VideoID, string, error) {
	call := y.Client.Search.
		List([]string{"id"}).
		Context(ctx).
		Q(query).
		MaxResults(n).
		Type("video").
		Order("viewCount")

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, "", err
	}

	ids := make([]model.VideoID, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, model.VideoID(item.Id.VideoId))
	}

	return ids, response.NextPageToken, nil
}

func (y *Youtube) ListDetails(ctx context.Context, ids []model.VideoID) ([]model.VideoDetails, error) {
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = string(id)
	}
	call := y.Client.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Context(ctx).
		Id(strings.Join(strIDs, ","))

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	details := make([]model.VideoDetails, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil {
			continue
		}
		d := model.VideoDetails{
			ID:           model.VideoID(item.Id),
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			Tags:         item.Snippet.Tags,
			CategoryID:   item.Snippet.CategoryId,
			PublishedAt:  item.Snippet.PublishedAt,
		}
		if item.ContentDetails != nil {
			d.Duration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			d.ViewCount = item.Statistics.ViewCount
			d.CommentCount = item.Statistics.CommentCount
		}
		details = append(details, d)
	}

	return details, nil
}

package model

import "strings"

type VideoID string

// Captions is the result of a transcript lookup. Text is empty whenever
// Available is false.
type Captions struct {
	Available bool
	Text      string
}

// VideoDetails holds one item of a batched details response. Counts default
// to zero and Tags to nil when the platform omits them.
type VideoDetails struct {
	ID           VideoID
	Title        string
	Description  string
	ChannelTitle string
	Tags         []string
	CategoryID   string
	PublishedAt  string
	Duration     string // ISO-8601, e.g. PT1H2M3S
	ViewCount    uint64
	CommentCount uint64
}

// VideoRecord is the enriched unit of output. It is built once per details
// item and not mutated afterwards.
type VideoRecord struct {
	ID                VideoID
	URL               string
	Title             string
	Description       string
	ChannelTitle      string
	Tags              string // comma-joined
	CategoryID        string
	PublishedAt       string
	Duration          string // human-readable, H:MM:SS
	ViewCount         uint64
	CommentCount      uint64
	CaptionsAvailable bool
	CaptionText       string
}

func NewVideoRecord(d VideoDetails, c Captions) VideoRecord {
	return VideoRecord{
		ID:                d.ID,
		URL:               WatchURL(d.ID),
		Title:             d.Title,
		Description:       d.Description,
		ChannelTitle:      d.ChannelTitle,
		Tags:              strings.Join(d.Tags, ","),
		CategoryID:        d.CategoryID,
		PublishedAt:       d.PublishedAt,
		Duration:          HumanDuration(d.Duration),
		ViewCount:         d.ViewCount,
		CommentCount:      d.CommentCount,
		CaptionsAvailable: c.Available,
		CaptionText:       c.Text,
	}
}

func WatchURL(id VideoID) string {
	return "https://www.youtube.com/watch?v=" + string(id)
}

package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytcollect/export"
	"ytcollect/model"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []model.VideoRecord{
		{
			ID:                "abc123",
			URL:               "https://www.youtube.com/watch?v=abc123",
			Title:             "Magnus plays the, \"Bongcloud\"",
			Description:       "line one\nline two",
			ChannelTitle:      "Chess Channel",
			Tags:              "chess,openings",
			CategoryID:        "20",
			PublishedAt:       "2023-01-15T10:00:00Z",
			Duration:          "0:12:34",
			ViewCount:         123456,
			CommentCount:      789,
			CaptionsAvailable: true,
			CaptionText:       "hello world",
		},
		{
			ID:  "def456",
			URL: "https://www.youtube.com/watch?v=def456",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, export.Header, rows[0])

	assert.Equal(t, "abc123", rows[1][0])
	assert.Equal(t, "Magnus plays the, \"Bongcloud\"", rows[1][2])
	assert.Equal(t, "line one\nline two", rows[1][3])
	assert.Equal(t, "0:12:34", rows[1][8])
	assert.Equal(t, "123456", rows[1][9])
	assert.Equal(t, "789", rows[1][10])
	assert.Equal(t, "True", rows[1][11])
	assert.Equal(t, "hello world", rows[1][12])

	assert.Equal(t, "False", rows[2][11])
	assert.Equal(t, "0", rows[2][9], "absent counts serialize as zero")
	assert.Empty(t, rows[2][12])
}

func TestSanitizeTopic(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"rock/metal!", "rockmetal"},
		{"chess", "chess"},
		{"lo-fi hip_hop", "lo-fi hip_hop"},
		{"  padded  ", "padded"},
		{"100% pure?", "100 pure"},
		{"///", ""},
	} {
		assert.Equal(t, tc.want, export.SanitizeTopic(tc.in), "input %q", tc.in)
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2023, 6, 1, 14, 30, 5, 0, time.UTC)

	assert.Equal(t, "youtube_rockmetal_20230601_143005.csv", export.Filename("rock/metal!", ts))
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"ytcollect/model"
)

// Header is the fixed column order of the output file.
var Header = []string{
	"Video ID",
	"Video URL",
	"Title",
	"Description",
	"Channel Title",
	"Keyword Tags",
	"YouTube Video Category",
	"Video Published at",
	"Video Duration",
	"View Count",
	"Comment Count",
	"Captions Available",
	"Caption Text",
}

// WriteCSV serializes records with a header row. Booleans render as
// True/False.
func WriteCSV(w io.Writer, records []model.VideoRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			string(r.ID),
			r.URL,
			r.Title,
			r.Description,
			r.ChannelTitle,
			r.Tags,
			r.CategoryID,
			r.PublishedAt,
			r.Duration,
			strconv.FormatUint(r.ViewCount, 10),
			strconv.FormatUint(r.CommentCount, 10),
			formatBool(r.CaptionsAvailable),
			r.CaptionText,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile writes the full record set to path in one shot.
func WriteFile(path string, records []model.VideoRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// SanitizeTopic keeps alphanumerics, spaces, hyphens and underscores and
// trims surrounding whitespace.
func SanitizeTopic(topic string) string {
	var b strings.Builder
	for _, c := range topic {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == ' ', c == '-', c == '_':
			b.WriteRune(c)
		}
	}

	return strings.TrimSpace(b.String())
}

// Filename derives the output file name from the topic and a timestamp.
// Distinct runs within the same second collide; accepted.
func Filename(topic string, ts time.Time) string {
	return fmt.Sprintf("youtube_%s_%s.csv", SanitizeTopic(topic), ts.Format("20060102_150405"))
}

func formatBool(b bool) string {
	if b {
		return "True"
	}

	return "False"
}

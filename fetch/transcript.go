package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ytcollect/model"
)

const maxWatchPageBytes = 4 << 20

// TranscriptClient resolves caption text through the public timedtext
// endpoints behind the watch page. The Data API only hands out caption
// downloads to the video owner, so an API-key client has to go the way a
// browser does: read the track listing from the watch page, then fetch the
// track itself.
type TranscriptClient struct {
	httpClient *http.Client
	baseURL    string
	language   string
}

func NewTranscriptClient(language string) *TranscriptClient {
	return &TranscriptClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    "https://www.youtube.com",
		language:   language,
	}
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" marks auto-generated tracks
}

// FetchCaptions returns the concatenated caption text for id, preferring the
// configured language and falling back to any manually-created track. Every
// failure mode yields an unavailable result, never an error.
func (t *TranscriptClient) FetchCaptions(ctx context.Context, id model.VideoID) model.Captions {
	tracks, err := t.listTracks(ctx, id)
	if err != nil || len(tracks) == 0 {
		return model.Captions{}
	}
	track := pickTrack(tracks, t.language)
	if track == nil {
		return model.Captions{}
	}
	text, err := t.fetchTrack(ctx, track.BaseURL)
	if err != nil || text == "" {
		return model.Captions{}
	}

	return model.Captions{Available: true, Text: text}
}

func (t *TranscriptClient) listTracks(ctx context.Context, id model.VideoID) ([]captionTrack, error) {
	body, err := t.get(ctx, t.baseURL+"/watch?v="+string(id))
	if err != nil {
		return nil, err
	}

	const marker = `"captionTracks":`
	i := bytes.Index(body, []byte(marker))
	if i < 0 {
		return nil, nil
	}

	// The player config embeds the track list as a JSON array; decode just
	// that array and ignore whatever follows it.
	var tracks []captionTrack
	dec := json.NewDecoder(bytes.NewReader(body[i+len(marker):]))
	if err := dec.Decode(&tracks); err != nil {
		return nil, err
	}

	return tracks, nil
}

func (t *TranscriptClient) fetchTrack(ctx context.Context, baseURL string) (string, error) {
	body, err := t.get(ctx, baseURL+"&fmt=json3")
	if err != nil {
		return "", err
	}

	var tt struct {
		Events []struct {
			Segs []struct {
				UTF8 string `json:"utf8"`
			} `json:"segs"`
		} `json:"events"`
	}
	if err := json.Unmarshal(body, &tt); err != nil {
		return "", err
	}

	var parts []string
	for _, event := range tt.Events {
		for _, seg := range event.Segs {
			if text := strings.TrimSpace(seg.UTF8); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, " "), nil
}

func (t *TranscriptClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
}

func pickTrack(tracks []captionTrack, language string) *captionTrack {
	for i, track := range tracks {
		if track.LanguageCode == language || strings.HasPrefix(track.LanguageCode, language+"-") {
			return &tracks[i]
		}
	}
	for i, track := range tracks {
		if track.Kind != "asr" {
			return &tracks[i]
		}
	}

	return nil
}

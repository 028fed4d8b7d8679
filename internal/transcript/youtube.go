// Package transcript fetches YouTube caption text.
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/utils"
)

const (
	DefaultBaseURL = "https://www.youtube.com"
	DefaultTimeout = 15 * time.Second

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

	// playerResponseMarker precedes the player JSON in the watch page.
	playerResponseMarker = "ytInitialPlayerResponse = "

	maxWatchPage = 6 << 20
	maxCaptions  = 2 << 20
)

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	BaseURL string        // ex: "https://www.youtube.com"
	Timeout time.Duration // whole fetch (page + captions)
	Langs   []string      // preferred caption languages, in order
	Client  *http.Client
}

// Fetcher retrieves transcripts by scraping the watch page for caption
// tracks and downloading the chosen track.
type Fetcher struct {
	baseURL string
	timeout time.Duration
	langs   []string
	client  *http.Client
	logger  logger.Logger
}

func New(opts Options, log logger.Logger) *Fetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if len(opts.Langs) == 0 {
		opts.Langs = []string{"en"}
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}
	return &Fetcher{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		langs:   opts.Langs,
		client:  opts.Client,
		logger:  log,
	}
}

// Fetch returns every caption fragment of the video joined by single spaces.
// Errors are logged and reported as ("", false); they never propagate.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	text, err := f.fetch(ctx, videoID)
	if err != nil {
		f.logger.Warn("error fetching transcript",
			logger.String("video_id", videoID),
			logger.Duration("elapsed", time.Since(start)),
			logger.Error(err))
		return "", false
	}

	f.logger.Debug("transcript fetched",
		logger.String("video_id", videoID),
		logger.Int("chars", len(text)),
		logger.Duration("elapsed", time.Since(start)))
	return text, true
}

func (f *Fetcher) fetch(ctx context.Context, videoID string) (string, error) {
	if videoID == "" {
		return "", errors.New("empty video id")
	}

	watchURL := f.baseURL + "/watch?v=" + url.QueryEscape(videoID)
	page, err := f.get(ctx, watchURL, maxWatchPage)
	if err != nil {
		return "", fmt.Errorf("watch page: %w", err)
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return "", err
	}
	track := pickTrack(tracks, f.langs)

	body, err := f.get(ctx, track.BaseURL, maxCaptions)
	if err != nil {
		return "", fmt.Errorf("captions (%s): %w", track.LanguageCode, err)
	}

	text, err := parseTimedText(body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("empty transcript")
	}
	return text, nil
}

func (f *Fetcher) get(ctx context.Context, target string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

// parseCaptionTracks extracts caption tracks from the watch page HTML.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	idx := strings.Index(string(page), playerResponseMarker)
	if idx < 0 {
		return nil, errors.New("player response not found in watch page")
	}
	raw := extractJSONObject(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, errors.New("malformed player response")
	}

	var pr playerResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	if pr.Captions == nil {
		if pr.PlayabilityStatus != nil && pr.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", pr.PlayabilityStatus.Reason)
		}
		return nil, errors.New("video has no captions")
	}

	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	usable := tracks[:0:0]
	for _, t := range tracks {
		if t.BaseURL != "" {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return nil, errors.New("no caption tracks")
	}
	return usable, nil
}

// pickTrack prefers a manual track in a preferred language, then any track
// in a preferred language, then any English track, then the first one.
// tracks must not be empty.
func pickTrack(tracks []captionTrack, langs []string) captionTrack {
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t
			}
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t
		}
	}
	return tracks[0]
}

// extractJSONObject returns the balanced {...} object at the start of data,
// or nil when it is not terminated.
func extractJSONObject(data []byte) []byte {
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	depth := 0
	inString := false
	escaped := false
	for i, c := range data {
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}
	return nil
}

package transcript

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

func watchPage(playerJSON string) string {
	return `<html><script>var ytInitialPlayerResponse = ` + playerJSON + `;var meta = {};</script></html>`
}

func newYouTube(t *testing.T, captions string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("v") {
		case "abc123":
			player := fmt.Sprintf(`{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[`+
				`{"baseUrl":"%[1]s/api/timedtext?lang=de","languageCode":"de"},`+
				`{"baseUrl":"%[1]s/api/timedtext?lang=en","languageCode":"en","kind":"asr"}]}},"title":"a } brace"}`, srv.URL)
			_, _ = w.Write([]byte(watchPage(player)))
		case "nocaps":
			_, _ = w.Write([]byte(watchPage(`{"playabilityStatus":{"status":"OK"}}`)))
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lang") != "en" {
			http.Error(w, "wrong track", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(captions))
	})
	return srv
}

func TestFetch(t *testing.T) {
	captions := `<?xml version="1.0" encoding="utf-8" ?><transcript>` +
		`<text start="0" dur="1">Hello</text>` +
		`<text start="1" dur="1">it&amp;#39;s   a
test</text>` +
		`<text start="2" dur="1">  </text>` +
		`<text start="3" dur="1">world</text></transcript>`
	srv := newYouTube(t, captions)

	f := New(Options{BaseURL: srv.URL, Timeout: 2 * time.Second, Langs: []string{"en"}}, logger.NewNop())

	got, ok := f.Fetch(context.Background(), "abc123")
	if !ok {
		t.Fatal("Fetch() ok = false, want true")
	}
	if want := "Hello it's a test world"; got != want {
		t.Errorf("Fetch() = %q, want %q", got, want)
	}
}

func TestFetchFailures(t *testing.T) {
	srv := newYouTube(t, `<transcript></transcript>`)
	f := New(Options{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger.NewNop())

	tests := []struct {
		name    string
		videoID string
	}{
		{name: "empty id", videoID: ""},
		{name: "unknown video", videoID: "missing"},
		{name: "no captions", videoID: "nocaps"},
		{name: "empty transcript", videoID: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.Fetch(context.Background(), tt.videoID)
			if ok || got != "" {
				t.Errorf("Fetch(%q) = (%q, %v), want (\"\", false)", tt.videoID, got, ok)
			}
		})
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := New(Options{BaseURL: srv.URL, Timeout: 100 * time.Millisecond}, logger.NewNop())

	start := time.Now()
	if _, ok := f.Fetch(context.Background(), "slow"); ok {
		t.Fatal("Fetch() ok = true, want false on timeout")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Fetch() took %v, want it bounded by the timeout", elapsed)
	}
}

func TestPickTrack(t *testing.T) {
	tracks := []captionTrack{
		{LanguageCode: "de", BaseURL: "de"},
		{LanguageCode: "en", Kind: "asr", BaseURL: "en-asr"},
		{LanguageCode: "en", BaseURL: "en"},
		{LanguageCode: "fr", Kind: "asr", BaseURL: "fr-asr"},
	}

	tests := []struct {
		name  string
		langs []string
		want  string
	}{
		{name: "manual preferred over asr", langs: []string{"en"}, want: "en"},
		{name: "asr when only option in lang", langs: []string{"fr"}, want: "fr-asr"},
		{name: "order of preference", langs: []string{"de", "en"}, want: "de"},
		{name: "english fallback", langs: []string{"ja"}, want: "en-asr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickTrack(tracks, tt.langs); got.BaseURL != tt.want {
				t.Errorf("pickTrack() = %q, want %q", got.BaseURL, tt.want)
			}
		})
	}

	if got := pickTrack(tracks[3:], []string{"ja"}); got.BaseURL != "fr-asr" {
		t.Errorf("pickTrack() = %q, want first track", got.BaseURL)
	}
}

func TestParseTimedTextSrv3(t *testing.T) {
	body := `<timedtext format="3"><body>` +
		`<p t="0" d="1"><s>Go</s><s> is</s></p>` +
		`<p t="1" d="1">fun &amp;amp; fast</p>` +
		`</body></timedtext>`

	got, err := parseTimedText([]byte(body))
	if err != nil {
		t.Fatalf("parseTimedText() error = %v", err)
	}
	if want := "Go is fun & fast"; got != want {
		t.Errorf("parseTimedText() = %q, want %q", got, want)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `{"a":1};rest`, want: `{"a":1}`},
		{in: `{"a":"}{\"}"};x`, want: `{"a":"}{\"}"}`},
		{in: `{"a":{"b":{}}} trailing`, want: `{"a":{"b":{}}}`},
		{in: `{"unterminated":`, want: ""},
		{in: `not json`, want: ""},
	}

	for _, tt := range tests {
		if got := string(extractJSONObject([]byte(tt.in))); got != tt.want {
			t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

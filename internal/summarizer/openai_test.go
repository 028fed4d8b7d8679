package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

func TestSummarize(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q, want /v1/chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  A short summary.\n"}}]}`))
	}))
	defer srv.Close()

	c := New(Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1/", Timeout: time.Second}, logger.NewNop())

	summary, ok := c.Summarize(context.Background(), "the transcript", "abc")
	if !ok {
		t.Fatal("Summarize() ok = false, want true")
	}
	if summary != "A short summary." {
		t.Errorf("Summarize() = %q", summary)
	}

	if got.Model != Model || got.MaxTokens != MaxTokens || got.Temperature != Temperature {
		t.Errorf("request params = %+v", got)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != systemPrompt {
		t.Errorf("system message = %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || !strings.HasSuffix(got.Messages[1].Content, "\n\nthe transcript") {
		t.Errorf("user message = %+v", got.Messages[1])
	}
}

func TestSummarizeFailures(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		status  int
		body    string
		timeout time.Duration
		delay   time.Duration
	}{
		{name: "no api key", apiKey: "", status: http.StatusOK, body: `{"choices":[{"message":{"content":"x"}}]}`},
		{name: "upstream error", apiKey: "k", status: http.StatusTooManyRequests, body: `{"error":{"message":"rate limited"}}`},
		{name: "no choices", apiKey: "k", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "empty content", apiKey: "k", status: http.StatusOK, body: `{"choices":[{"message":{"content":"   "}}]}`},
		{name: "garbage", apiKey: "k", status: http.StatusOK, body: `<html>`},
		{name: "timeout", apiKey: "k", status: http.StatusOK, body: `{}`, timeout: 50 * time.Millisecond, delay: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if tt.delay > 0 {
					select {
					case <-r.Context().Done():
						return
					case <-time.After(tt.delay):
					}
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Second
			}
			c := New(Options{APIKey: tt.apiKey, BaseURL: srv.URL, Timeout: timeout}, logger.NewNop())

			summary, ok := c.Summarize(context.Background(), "t", "vid")
			if ok || summary != "" {
				t.Errorf("Summarize() = (%q, %v), want (\"\", false)", summary, ok)
			}
			if tt.apiKey == "" && calls != 0 {
				t.Errorf("upstream called %d times without a key", calls)
			}
		})
	}
}

func TestStatusErrorSnippet(t *testing.T) {
	err := &StatusError{Code: 500, Body: snippet([]byte(strings.Repeat("x", 1000)))}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("Error() = %q", err.Error())
	}
	if len(err.Body) != errorSnippet+3 {
		t.Errorf("len(Body) = %d, want %d", len(err.Body), errorSnippet+3)
	}
}

func TestSnippetKeepsRunesWhole(t *testing.T) {
	// "é" is two bytes, so byte 300 falls inside a rune.
	got := snippet([]byte("x" + strings.Repeat("é", 500)))

	if !utf8.ValidString(got) {
		t.Fatalf("snippet() produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "é...") {
		t.Errorf("snippet() = %q, want a whole rune before the ellipsis", got)
	}
	if len(got) != errorSnippet-1+3 {
		t.Errorf("len(snippet()) = %d, want %d", len(got), errorSnippet-1+3)
	}

	if got := snippet([]byte("  short body \n")); got != "short body" {
		t.Errorf("snippet() = %q, want trimmed body unchanged", got)
	}
}

// Package summarizer turns transcripts into short summaries with an
// OpenAI-compatible chat completions endpoint.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/utils"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultTimeout = 30 * time.Second

	Model       = "gpt-3.5-turbo"
	Temperature = 0.7
	MaxTokens   = 500

	systemPrompt = "You are a helpful assistant that summarizes YouTube video transcripts."
	userPrompt   = "Please summarize the following YouTube video transcript in about 250 words:\n\n"

	maxResponse  = 1 << 20
	errorSnippet = 300
)

// ErrNoAPIKey is returned when no credential is configured.
var ErrNoAPIKey = errors.New("OpenAI API key not configured")

type Options struct {
	APIKey  string
	BaseURL string // ex: "https://api.openai.com/v1"
	Timeout time.Duration
	Client  *http.Client
}

type Client struct {
	apiKey   string
	endpoint string
	timeout  time.Duration
	http     *http.Client
	logger   logger.Logger
}

func New(opts Options, log logger.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		apiKey:   opts.APIKey,
		endpoint: strings.TrimRight(opts.BaseURL, "/") + "/chat/completions",
		timeout:  opts.Timeout,
		http:     opts.Client,
		logger:   log,
	}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Summarize asks the model for a summary of transcript. Every failure is
// logged and reported as ("", false).
func (c *Client) Summarize(ctx context.Context, transcript, videoID string) (string, bool) {
	start := time.Now()
	summary, err := c.summarize(ctx, transcript)
	if err != nil {
		c.logger.Warn("error generating summary",
			logger.String("video_id", videoID),
			logger.Duration("elapsed", time.Since(start)),
			logger.ErrorClass(err),
			logger.Error(err))
		return "", false
	}

	c.logger.Debug("summary generated",
		logger.String("video_id", videoID),
		logger.Int("chars", len(summary)),
		logger.Duration("elapsed", time.Since(start)))
	return summary, true
}

func (c *Client) summarize(ctx context.Context, transcript string) (string, error) {
	if !c.Enabled() {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(chatRequest{
		Model: Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt + transcript},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completions API: %w", err)
	}
	defer utils.Close(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Body: snippet(body)}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("response has no choices")
	}

	summary := strings.TrimSpace(out.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("empty summary")
	}
	return summary, nil
}

// StatusError is a non-200 answer from the completions endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completions API returned HTTP %d: %s", e.Code, e.Body)
}

// snippet keeps at most errorSnippet bytes of body without splitting a rune.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= errorSnippet {
		return s
	}
	cut := errorSnippet
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxBookmarkTitle       = 200
	MaxBookmarkDescription = 500
)

// ValidationError reports a rejected field. Its text is returned to the
// client as-is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewBookmark validates the user-supplied fields and builds a bookmark
// stamped with now. The ID is left empty for the store to fill.
func NewBookmark(title, rawURL string, description *string, tags []string, now time.Time) (*Bookmark, error) {
	n := utf8.RuneCountInString(title)
	if n < 1 {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if n > MaxBookmarkTitle {
		return nil, &ValidationError{Field: "title", Reason: fmt.Sprintf("must be at most %d characters", MaxBookmarkTitle)}
	}

	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	if description != nil && utf8.RuneCountInString(*description) > MaxBookmarkDescription {
		return nil, &ValidationError{Field: "description", Reason: fmt.Sprintf("must be at most %d characters", MaxBookmarkDescription)}
	}

	if tags == nil {
		tags = []string{}
	}

	return &Bookmark{
		Title:       title,
		URL:         normalized,
		Description: description,
		Tags:        tags,
		CreatedAt:   now.UTC(),
	}, nil
}

// normalizeURL accepts absolute http(s) URLs with a host.
// A bare host gets a trailing slash, matching how the URL is echoed back.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &ValidationError{Field: "url", Reason: "must not be empty"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &ValidationError{Field: "url", Reason: "invalid URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ValidationError{Field: "url", Reason: "URL scheme should be 'http' or 'https'"}
	}
	if u.Host == "" {
		return "", &ValidationError{Field: "url", Reason: "URL host is missing"}
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

package service

import (
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
)

// Request payloads, decoded straight from JSON bodies.

type NoteInput struct {
	Content string `json:"content"`
}

type SummaryInput struct {
	URL string `json:"url"`
}

type BookmarkInput struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Response shapes. IDs are always plain strings.

type NoteView struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type SummaryView struct {
	ID      string `json:"id,omitempty"` // empty on a degraded create
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

type BookmarkView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
}

func toSummaryView(s *domain.YouTubeSummary) SummaryView {
	return SummaryView{ID: s.ID, URL: s.URL, Summary: s.Summary}
}

func toBookmarkView(b *domain.Bookmark) BookmarkView {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BookmarkView{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		Tags:        tags,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

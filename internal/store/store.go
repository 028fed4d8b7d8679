// Package store defines the document store contract shared by every backend.
//
// Backends live in sub-packages (mongo, redis, memory). The active one is
// picked once at startup and handed around as a Store; callers never know
// which backend they talk to.
package store

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
)

var (
	// ErrNotFound means no document matched the identifier.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID means the identifier cannot be parsed into the backend's
	// native identifier type. Callers treat it like ErrNotFound.
	ErrInvalidID = errors.New("invalid document id")
)

// Store persists notes, summaries and bookmarks.
//
// Save methods assign the entity ID. Get and Delete return ErrInvalidID or
// ErrNotFound (possibly wrapped) when the document does not exist.
type Store interface {
	// Backend names the implementation: "mongo", "redis" or "memory".
	Backend() string

	SaveNote(ctx context.Context, note *domain.Note) error

	SaveSummary(ctx context.Context, summary *domain.YouTubeSummary) error
	ListSummaries(ctx context.Context) ([]*domain.YouTubeSummary, error)
	GetSummary(ctx context.Context, id string) (*domain.YouTubeSummary, error)
	DeleteSummary(ctx context.Context, id string) error

	SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error
	// ListBookmarks returns bookmarks in insertion order. A non-empty tag
	// keeps only bookmarks carrying that tag.
	ListBookmarks(ctx context.Context, tag string) ([]*domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// IsMissing reports whether err means the document is absent, either
// because the id is malformed or because nothing matched.
func IsMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID)
}

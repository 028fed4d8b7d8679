// Package memory is the in-process fallback store used when the configured
// database is unreachable. Nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

// Backend is the value returned by Store.Backend.
const Backend = "memory"

// Store keeps one slice per collection, in insertion order.
// Lookups are linear scans by ID equality.
type Store struct {
	mu        sync.RWMutex
	notes     []*domain.Note
	summaries []*domain.YouTubeSummary
	bookmarks []*domain.Bookmark
	newID     func() string
}

var _ store.Store = (*Store)(nil)

// New creates an empty store assigning random UUID identifiers.
func New() *Store {
	return &Store{newID: uuid.NewString}
}

func (s *Store) Backend() string { return Backend }

func (s *Store) SaveNote(_ context.Context, note *domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.ID == "" {
		note.ID = s.newID()
	}
	cp := *note
	s.notes = append(s.notes, &cp)
	return nil
}

// ─────────────────────────────────────────────────────────────────
// Summaries
// ─────────────────────────────────────────────────────────────────

func (s *Store) SaveSummary(_ context.Context, summary *domain.YouTubeSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if summary.ID == "" {
		summary.ID = s.newID()
	}
	cp := *summary
	s.summaries = append(s.summaries, &cp)
	return nil
}

func (s *Store) ListSummaries(_ context.Context) ([]*domain.YouTubeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.YouTubeSummary, 0, len(s.summaries))
	for _, sm := range s.summaries {
		cp := *sm
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) GetSummary(_ context.Context, id string) (*domain.YouTubeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sm := range s.summaries {
		if sm.ID == id {
			cp := *sm
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("summary %s: %w", id, store.ErrNotFound)
}

func (s *Store) DeleteSummary(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.summaries, func(sm *domain.YouTubeSummary) bool { return sm.ID == id })
	if i < 0 {
		return fmt.Errorf("summary %s: %w", id, store.ErrNotFound)
	}
	s.summaries = slices.Delete(s.summaries, i, i+1)
	return nil
}

// ─────────────────────────────────────────────────────────────────
// Bookmarks
// ─────────────────────────────────────────────────────────────────

func (s *Store) SaveBookmark(_ context.Context, bookmark *domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bookmark.ID == "" {
		bookmark.ID = s.newID()
	}
	s.bookmarks = append(s.bookmarks, cloneBookmark(bookmark))
	return nil
}

func (s *Store) ListBookmarks(_ context.Context, tag string) ([]*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		if tag != "" && !b.HasTag(tag) {
			continue
		}
		out = append(out, cloneBookmark(b))
	}
	return out, nil
}

func (s *Store) DeleteBookmark(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.bookmarks, func(b *domain.Bookmark) bool { return b.ID == id })
	if i < 0 {
		return fmt.Errorf("bookmark %s: %w", id, store.ErrNotFound)
	}
	s.bookmarks = slices.Delete(s.bookmarks, i, i+1)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op; there is no connection to release.
func (s *Store) Close(context.Context) error { return nil }

func cloneBookmark(b *domain.Bookmark) *domain.Bookmark {
	cp := *b
	cp.Tags = slices.Clone(b.Tags)
	if cp.Tags == nil {
		cp.Tags = []string{}
	}
	if b.Description != nil {
		d := *b.Description
		cp.Description = &d
	}
	return &cp
}

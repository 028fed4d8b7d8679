package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

// CreateBookmark validates and stores a bookmark. Rejected input comes back
// as a *domain.ValidationError.
func (s *Service) CreateBookmark(ctx context.Context, in BookmarkInput) (BookmarkView, error) {
	bookmark, err := domain.NewBookmark(in.Title, in.URL, in.Description, in.Tags, s.now())
	if err != nil {
		return BookmarkView{}, err
	}

	if err := s.store.SaveBookmark(ctx, bookmark); err != nil {
		s.logger.Error("failed to save bookmark",
			logger.String("url", bookmark.URL),
			logger.String("backend", s.store.Backend()),
			logger.Error(err))
		return BookmarkView{}, fmt.Errorf("failed to save bookmark: %w", err)
	}
	return toBookmarkView(bookmark), nil
}

// ListBookmarks returns stored bookmarks in insertion order, only those
// tagged with tag when it is not empty. Store failures yield an empty list.
func (s *Service) ListBookmarks(ctx context.Context, tag string) []BookmarkView {
	bookmarks, err := s.store.ListBookmarks(ctx, tag)
	if err != nil {
		s.logger.Error("failed to list bookmarks",
			logger.String("tag", tag),
			logger.String("backend", s.store.Backend()),
			logger.Error(err))
		return []BookmarkView{}
	}

	out := make([]BookmarkView, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, toBookmarkView(b))
	}
	return out
}

// DeleteBookmark reports whether a bookmark was removed.
func (s *Service) DeleteBookmark(ctx context.Context, id string) bool {
	if err := s.store.DeleteBookmark(ctx, id); err != nil {
		s.lookupFailed("delete bookmark", id, err)
		return false
	}
	s.logger.Info("bookmark deleted", logger.String("id", id))
	return true
}

// ImportBookmarks creates each input in order and returns how many were
// stored. Invalid entries are skipped with a warning; a store failure
// aborts the import.
func (s *Service) ImportBookmarks(ctx context.Context, inputs []BookmarkInput) (int, error) {
	imported := 0
	for i, in := range inputs {
		_, err := s.CreateBookmark(ctx, in)

		var verr *domain.ValidationError
		switch {
		case err == nil:
			imported++
		case errors.As(err, &verr):
			s.logger.Warn("skipping invalid bookmark",
				logger.Int("index", i),
				logger.String("title", in.Title),
				logger.Error(err))
		default:
			return imported, fmt.Errorf("failed to import bookmark %d: %w", i, err)
		}
	}
	return imported, nil
}

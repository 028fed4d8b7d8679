package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
)

type bookmarkRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

func newBookmarkRecord(id string, b *domain.Bookmark) bookmarkRecord {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return bookmarkRecord{
		ID:          id,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		Tags:        tags,
		CreatedAt:   b.CreatedAt,
	}
}

func (r bookmarkRecord) toDomain() *domain.Bookmark {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Bookmark{
		ID:          r.ID,
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Tags:        tags,
		CreatedAt:   r.CreatedAt,
	}
}

// uniqueTags drops duplicates so each tag index gets the ID once.
func uniqueTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// SaveBookmark stores a bookmark in Redis and indexes it under each tag
func (s *Store) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	id, score := newID()
	data, err := json.Marshal(newBookmarkRecord(id, bookmark))
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, BookmarkKey(id), data, 0)
		pipe.ZAdd(ctx, KeyAllBookmarks, redis.Z{Score: score, Member: id})
		for _, tag := range uniqueTags(bookmark.Tags) {
			pipe.ZAdd(ctx, TagKey(tag), redis.Z{Score: score, Member: id})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	bookmark.ID = id
	return nil
}

// ListBookmarks retrieves bookmarks in creation order, optionally by tag
func (s *Store) ListBookmarks(ctx context.Context, tag string) ([]*domain.Bookmark, error) {
	raw, err := s.loadMany(ctx, bookmarkIndexKey(tag), BookmarkKey)
	if err != nil {
		return nil, err
	}

	bookmarks := make([]*domain.Bookmark, 0, len(raw))
	for _, data := range raw {
		var rec bookmarkRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			// Skip bookmarks that couldn't be decoded
			continue
		}
		bookmarks = append(bookmarks, rec.toDomain())
	}
	return bookmarks, nil
}

// getBookmark loads one bookmark; DeleteBookmark needs its tags to clean
// the tag indexes.
func (s *Store) getBookmark(ctx context.Context, id string) (*domain.Bookmark, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	data, err := s.loadOne(ctx, BookmarkKey(id), "bookmark", id)
	if err != nil {
		return nil, err
	}

	var rec bookmarkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookmark: %w", err)
	}
	return rec.toDomain(), nil
}

// DeleteBookmark removes a bookmark and its tag index entries
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	bookmark, err := s.getBookmark(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, BookmarkKey(id))
		pipe.ZRem(ctx, KeyAllBookmarks, id)
		for _, tag := range uniqueTags(bookmark.Tags) {
			pipe.ZRem(ctx, TagKey(tag), id)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

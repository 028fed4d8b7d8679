package redis

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "note", got: NoteKey("01H"), expected: "tubenotes:note:01H"},
		{name: "summary", got: SummaryKey("01H"), expected: "tubenotes:summary:01H"},
		{name: "bookmark", got: BookmarkKey("01H"), expected: "tubenotes:bookmark:01H"},
		{name: "tag", got: TagKey("go"), expected: "tubenotes:bookmarks:tag:go"},
		{name: "index without tag", got: bookmarkIndexKey(""), expected: KeyAllBookmarks},
		{name: "index with tag", got: bookmarkIndexKey("go"), expected: "tubenotes:bookmarks:tag:go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestNewIDIsOrderedAndParseable(t *testing.T) {
	prev, prevScore := newID()
	for i := 0; i < 100; i++ {
		id, score := newID()
		if id <= prev {
			t.Fatalf("newID() = %s, not after %s", id, prev)
		}
		if score < prevScore {
			t.Fatalf("score went backwards: %v < %v", score, prevScore)
		}
		if err := parseID(id); err != nil {
			t.Fatalf("parseID(%s) error = %v", id, err)
		}
		prev, prevScore = id, score
	}
}

func TestParseIDRejectsForeignIDs(t *testing.T) {
	for _, id := range []string{"", "abc", "65f1c2a9e4b0a1b2c3d4e5f6", "not-a-ulid-at-all-really!!"} {
		if err := parseID(id); !errors.Is(err, store.ErrInvalidID) {
			t.Errorf("parseID(%q) error = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestUniqueTags(t *testing.T) {
	got := uniqueTags([]string{"go", "web", "go", "api", "web"})
	want := []string{"go", "web", "api"}
	if len(got) != len(want) {
		t.Fatalf("uniqueTags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("uniqueTags()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBookmarkRecordJSON(t *testing.T) {
	created := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	in := &domain.Bookmark{Title: "Go", URL: "https://go.dev/", CreatedAt: created}

	data, err := json.Marshal(newBookmarkRecord("01ARZ3NDEKTSV4RRFFQ69G5FAV", in))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var rec bookmarkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	out := rec.toDomain()

	if out.ID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("ID = %q", out.ID)
	}
	if out.Tags == nil || len(out.Tags) != 0 {
		t.Errorf("Tags = %v, want empty non-nil", out.Tags)
	}
	if out.Description != nil {
		t.Errorf("Description = %v, want nil", out.Description)
	}
	if !out.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", out.CreatedAt, created)
	}
}

package domain

import (
	"slices"
	"time"
)

// Bookmark is a user-saved link.
//
// Bookmarks are created once and never updated; they can only be deleted.
type Bookmark struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is assigned by the store on save.
	// Its format depends on the active backend (ObjectID hex, ULID, UUID).
	ID string

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is 1..MaxBookmarkTitle characters.
	Title string

	// URL is an absolute http(s) URL.
	URL string

	// Description is optional (nil when not provided).
	Description *string

	// Tags keeps the order given at creation. Never nil.
	Tags []string

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is set server-side when the bookmark is built.
	CreatedAt time.Time
}

// HasTag reports whether tag is one of the bookmark's tags.
func (b *Bookmark) HasTag(tag string) bool {
	return slices.Contains(b.Tags, tag)
}

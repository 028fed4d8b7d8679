package redis

const (
	// KeyPrefixNote is the prefix for note keys
	KeyPrefixNote = "tubenotes:note:"
	// KeyPrefixSummary is the prefix for summary keys
	KeyPrefixSummary = "tubenotes:summary:"
	// KeyPrefixBookmark is the prefix for bookmark keys
	KeyPrefixBookmark = "tubenotes:bookmark:"
	// KeyPrefixTag is the prefix for per-tag bookmark indexes
	KeyPrefixTag = "tubenotes:bookmarks:tag:"

	// KeyAllNotes is the sorted set of all note IDs
	KeyAllNotes = "tubenotes:notes:all"
	// KeyAllSummaries is the sorted set of all summary IDs
	KeyAllSummaries = "tubenotes:summaries:all"
	// KeyAllBookmarks is the sorted set of all bookmark IDs
	KeyAllBookmarks = "tubenotes:bookmarks:all"
)

// NoteKey returns the Redis key for a note
func NoteKey(id string) string {
	return KeyPrefixNote + id
}

// SummaryKey returns the Redis key for a summary
func SummaryKey(id string) string {
	return KeyPrefixSummary + id
}

// BookmarkKey returns the Redis key for a bookmark
func BookmarkKey(id string) string {
	return KeyPrefixBookmark + id
}

// TagKey returns the sorted set of bookmark IDs carrying tag
func TagKey(tag string) string {
	return KeyPrefixTag + tag
}

// bookmarkIndexKey picks the index to scan for a (possibly empty) tag filter.
func bookmarkIndexKey(tag string) string {
	if tag == "" {
		return KeyAllBookmarks
	}
	return TagKey(tag)
}

package domain

import "strings"

// ExtractVideoID pulls the video identifier out of a YouTube URL.
//
// Forms are tried in order:
//
//	https://www.youtube.com/watch?v=ID&t=30 -> ID
//	https://youtu.be/ID?si=xyz              -> ID
//	ID                                      -> ID
//
// Anything else is returned unchanged.
func ExtractVideoID(raw string) string {
	if _, after, ok := strings.Cut(raw, "v="); ok {
		id, _, _ := strings.Cut(after, "&")
		return id
	}
	if _, after, ok := strings.Cut(raw, "youtu.be/"); ok {
		id, _, _ := strings.Cut(after, "?")
		return id
	}
	return raw
}

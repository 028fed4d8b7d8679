package domain

// Note is free text dropped by the user. It is write-only: nothing reads
// notes back.
type Note struct {
	ID      string
	Content string
}

// YouTubeSummary is the generated summary of a video.
//
// Summary may hold error text when transcript fetching or the LLM call
// failed; the record is persisted either way.
type YouTubeSummary struct {
	ID string

	// URL is stored exactly as submitted (not validated).
	URL string

	Summary string
}

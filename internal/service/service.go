// Package service implements the user-facing operations on notes,
// summaries and bookmarks on top of a store.Store.
package service

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

// TranscriptFetcher returns the caption text of a video, or false when
// none could be retrieved.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, bool)
}

// Summarizer condenses a transcript, or returns false on any failure.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, videoID string) (string, bool)
}

type Service struct {
	store       store.Store
	transcripts TranscriptFetcher
	summarizer  Summarizer
	logger      logger.Logger
	now         func() time.Time
}

func New(st store.Store, transcripts TranscriptFetcher, summarizer Summarizer, log logger.Logger) *Service {
	return &Service{
		store:       st,
		transcripts: transcripts,
		summarizer:  summarizer,
		logger:      log,
		now:         time.Now,
	}
}

// Backend names the store the service writes to.
func (s *Service) Backend() string {
	return s.store.Backend()
}

// lookupFailed logs a failed get/delete. Missing documents are routine,
// anything else is a store fault; callers see "absent" either way.
func (s *Service) lookupFailed(op, id string, err error) {
	if store.IsMissing(err) {
		s.logger.Debug(op+": not found",
			logger.String("id", id),
			logger.Error(err))
		return
	}
	s.logger.Error(op+": store error",
		logger.String("id", id),
		logger.String("backend", s.store.Backend()),
		logger.ErrorClass(err),
		logger.Error(err))
}

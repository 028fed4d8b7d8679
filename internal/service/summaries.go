package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

// SummaryResult is the outcome of CreateSummary. A degraded result was not
// persisted: Summary has no ID and its text describes the failure.
type SummaryResult struct {
	Summary  SummaryView
	Degraded bool
	Reason   string
}

func noTranscriptText(videoID string) string {
	return fmt.Sprintf("No transcript available for video %s.", videoID)
}

func summaryFailedText(videoID string) string {
	return fmt.Sprintf("Failed to generate summary for video %s", videoID)
}

// CreateSummary fetches the transcript, summarizes it and stores the
// result. It never fails: transcript and LLM failures are replaced by
// fallback text, and a store failure yields a degraded result.
//
// Outbound calls are detached from the caller's cancellation; each client
// enforces its own timeout.
func (s *Service) CreateSummary(ctx context.Context, in SummaryInput) (res SummaryResult) {
	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprint(r)
			s.logger.Error("panic while creating summary",
				logger.String("url", in.URL),
				logger.String("panic", reason))
			res = degraded(in.URL, reason)
		}
	}()

	ctx = context.WithoutCancel(ctx)
	start := time.Now()
	videoID := domain.ExtractVideoID(in.URL)

	transcript, ok := s.transcripts.Fetch(ctx, videoID)
	if !ok {
		transcript = noTranscriptText(videoID)
	}

	text, ok := s.summarizer.Summarize(ctx, transcript, videoID)
	if !ok {
		text = summaryFailedText(videoID)
	}

	summary := &domain.YouTubeSummary{URL: in.URL, Summary: text}
	if err := s.store.SaveSummary(ctx, summary); err != nil {
		s.logger.Error("failed to save summary",
			logger.String("video_id", videoID),
			logger.String("backend", s.store.Backend()),
			logger.ErrorClass(err),
			logger.Error(err))
		return degraded(in.URL, err.Error())
	}

	s.logger.Info("summary created",
		logger.String("id", summary.ID),
		logger.String("video_id", videoID),
		logger.Bool("summarized", ok),
		logger.Duration("elapsed", time.Since(start)))
	return SummaryResult{Summary: toSummaryView(summary)}
}

func degraded(url, reason string) SummaryResult {
	return SummaryResult{
		Summary: SummaryView{
			URL:     url,
			Summary: "Error creating summary: " + reason,
		},
		Degraded: true,
		Reason:   reason,
	}
}

// ListSummaries returns every stored summary, or an empty list when the
// store fails.
func (s *Service) ListSummaries(ctx context.Context) []SummaryView {
	summaries, err := s.store.ListSummaries(ctx)
	if err != nil {
		s.logger.Error("failed to list summaries",
			logger.String("backend", s.store.Backend()),
			logger.Error(err))
		return []SummaryView{}
	}

	out := make([]SummaryView, 0, len(summaries))
	for _, sm := range summaries {
		out = append(out, toSummaryView(sm))
	}
	return out
}

// GetSummary reports false for a missing summary, a malformed id and a
// store fault alike. Only the logs tell them apart.
func (s *Service) GetSummary(ctx context.Context, id string) (SummaryView, bool) {
	summary, err := s.store.GetSummary(ctx, id)
	if err != nil {
		s.lookupFailed("get summary", id, err)
		return SummaryView{}, false
	}
	return toSummaryView(summary), true
}

// DeleteSummary reports whether a summary was removed.
func (s *Service) DeleteSummary(ctx context.Context, id string) bool {
	if err := s.store.DeleteSummary(ctx, id); err != nil {
		s.lookupFailed("delete summary", id, err)
		return false
	}
	s.logger.Info("summary deleted", logger.String("id", id))
	return true
}

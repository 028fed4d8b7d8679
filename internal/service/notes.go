package service

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

// CreateNote stores the note and echoes it back with its new id.
func (s *Service) CreateNote(ctx context.Context, in NoteInput) (NoteView, error) {
	note := &domain.Note{Content: in.Content}
	if err := s.store.SaveNote(ctx, note); err != nil {
		s.logger.Error("failed to save note",
			logger.String("backend", s.store.Backend()),
			logger.Error(err))
		return NoteView{}, fmt.Errorf("failed to save note: %w", err)
	}
	return NoteView{ID: note.ID, Content: note.Content}, nil
}

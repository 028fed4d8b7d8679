package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

type summaryRecord struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

func (r summaryRecord) toDomain() *domain.YouTubeSummary {
	return &domain.YouTubeSummary{ID: r.ID, URL: r.URL, Summary: r.Summary}
}

// SaveSummary stores a summary in Redis
func (s *Store) SaveSummary(ctx context.Context, summary *domain.YouTubeSummary) error {
	id, score := newID()
	data, err := json.Marshal(summaryRecord{ID: id, URL: summary.URL, Summary: summary.Summary})
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, SummaryKey(id), data, 0)
		pipe.ZAdd(ctx, KeyAllSummaries, redis.Z{Score: score, Member: id})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	summary.ID = id
	return nil
}

// ListSummaries retrieves all summaries in creation order
func (s *Store) ListSummaries(ctx context.Context) ([]*domain.YouTubeSummary, error) {
	raw, err := s.loadMany(ctx, KeyAllSummaries, SummaryKey)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.YouTubeSummary, 0, len(raw))
	for _, data := range raw {
		var rec summaryRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			// Skip summaries that couldn't be decoded
			continue
		}
		summaries = append(summaries, rec.toDomain())
	}
	return summaries, nil
}

// GetSummary retrieves a summary from Redis by ID
func (s *Store) GetSummary(ctx context.Context, id string) (*domain.YouTubeSummary, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	data, err := s.loadOne(ctx, SummaryKey(id), "summary", id)
	if err != nil {
		return nil, err
	}

	var rec summaryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return rec.toDomain(), nil
}

// DeleteSummary removes a summary from Redis
func (s *Store) DeleteSummary(ctx context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, SummaryKey(id))
		pipe.ZRem(ctx, KeyAllSummaries, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("summary %s: %w", id, store.ErrNotFound)
	}
	return nil
}

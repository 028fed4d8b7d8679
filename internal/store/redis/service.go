// Package redis implements store.Store on Redis.
//
// Every document is a JSON string under its own key. Sorted sets scored by
// creation time index the documents of each collection (and each bookmark
// tag), so listing returns insertion order.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

// Backend is the value returned by Store.Backend.
const Backend = "redis"

// Store handles Redis operations for notes, summaries and bookmarks
type Store struct {
	client *redis.Client
}

var _ store.Store = (*Store)(nil)

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

func (s *Store) Backend() string { return Backend }

// newID returns a ULID and the score used to order it.
func newID() (string, float64) {
	id := ulid.Make()
	return id.String(), float64(id.Time())
}

// parseID accepts only canonical ULIDs.
func parseID(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return fmt.Errorf("%q: %w", id, store.ErrInvalidID)
	}
	return nil
}

type noteRecord struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// SaveNote stores a note in Redis
func (s *Store) SaveNote(ctx context.Context, note *domain.Note) error {
	id, score := newID()
	data, err := json.Marshal(noteRecord{ID: id, Content: note.Content})
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, NoteKey(id), data, 0)
		pipe.ZAdd(ctx, KeyAllNotes, redis.Z{Score: score, Member: id})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	note.ID = id
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (s *Store) Close(context.Context) error {
	return s.client.Close()
}

// loadMany fetches the JSON documents listed in an index, in index order.
// IDs whose document has vanished are skipped.
func (s *Store) loadMany(ctx context.Context, index string, keyFn func(string) string) ([][]byte, error) {
	ids, err := s.client.ZRange(ctx, index, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", index, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFn(id)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		out = append(out, []byte(str))
	}
	return out, nil
}

// loadOne fetches a single JSON document, mapping redis.Nil to ErrNotFound.
func (s *Store) loadOne(ctx context.Context, key, kind, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s %s: %w", kind, id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return data, nil
}

// Package mongo implements store.Store on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

// Backend is the value returned by Store.Backend.
const Backend = "mongo"

// Store handles Mongo operations for notes, summaries and bookmarks.
type Store struct {
	client    *mongo.Client
	notes     *mongo.Collection
	summaries *mongo.Collection
	bookmarks *mongo.Collection
}

var _ store.Store = (*Store)(nil)

func newStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:    client,
		notes:     db.Collection(CollectionNotes),
		summaries: db.Collection(CollectionSummaries),
		bookmarks: db.Collection(CollectionBookmarks),
	}
}

func (s *Store) Backend() string { return Backend }

// insertion order: ObjectIDs grow with creation time.
var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func (s *Store) SaveNote(ctx context.Context, note *domain.Note) error {
	doc := noteDoc{ID: primitive.NewObjectID(), Content: note.Content}
	if _, err := s.notes.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	note.ID = doc.ID.Hex()
	return nil
}

// SaveSummary stores a summary and sets its ID.
func (s *Store) SaveSummary(ctx context.Context, summary *domain.YouTubeSummary) error {
	doc := summaryDoc{ID: primitive.NewObjectID(), URL: summary.URL, Summary: summary.Summary}
	if _, err := s.summaries.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	summary.ID = doc.ID.Hex()
	return nil
}

func (s *Store) ListSummaries(ctx context.Context) ([]*domain.YouTubeSummary, error) {
	cur, err := s.summaries.Find(ctx, bson.M{}, byID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	var docs []summaryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}

	out := make([]*domain.YouTubeSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Store) GetSummary(ctx context.Context, id string) (*domain.YouTubeSummary, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc summaryDoc
	if err := s.summaries.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("summary %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return doc.toDomain(), nil
}

func (s *Store) DeleteSummary(ctx context.Context, id string) error {
	return deleteByID(ctx, s.summaries, "summary", id)
}

// SaveBookmark stores a bookmark and sets its ID.
func (s *Store) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	doc := toBookmarkDoc(primitive.NewObjectID(), bookmark)
	if _, err := s.bookmarks.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	bookmark.ID = doc.ID.Hex()
	return nil
}

func (s *Store) ListBookmarks(ctx context.Context, tag string) ([]*domain.Bookmark, error) {
	cur, err := s.bookmarks.Find(ctx, tagFilter(tag), byID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	var docs []bookmarkDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks: %w", err)
	}

	out := make([]*domain.Bookmark, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	return deleteByID(ctx, s.bookmarks, "bookmark", id)
}

func (s *Store) Ping(ctx context.Context) error {
	return ping(ctx, s.client)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func deleteByID(ctx context.Context, coll *mongo.Collection, kind, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, store.ErrNotFound)
	}
	return nil
}

package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

// Collection names match the ones the previous Python service created, so
// existing databases keep working.
const (
	CollectionNotes     = "note"
	CollectionSummaries = "you_tube_summary"
	CollectionBookmarks = "bookmark"
)

type noteDoc struct {
	ID      primitive.ObjectID `bson:"_id"`
	Content string             `bson:"content"`
}

type summaryDoc struct {
	ID      primitive.ObjectID `bson:"_id"`
	URL     string             `bson:"url"`
	Summary string             `bson:"summary"`
}

type bookmarkDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	URL         string             `bson:"url"`
	Description *string            `bson:"description"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// parseID converts a hex string to an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, store.ErrInvalidID)
	}
	return oid, nil
}

// tagFilter matches documents whose tags array contains tag.
// An empty tag matches everything.
func tagFilter(tag string) bson.M {
	if tag == "" {
		return bson.M{}
	}
	return bson.M{"tags": tag}
}

func (d summaryDoc) toDomain() *domain.YouTubeSummary {
	return &domain.YouTubeSummary{
		ID:      d.ID.Hex(),
		URL:     d.URL,
		Summary: d.Summary,
	}
}

func toBookmarkDoc(id primitive.ObjectID, b *domain.Bookmark) bookmarkDoc {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return bookmarkDoc{
		ID:          id,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		Tags:        tags,
		CreatedAt:   b.CreatedAt,
	}
}

func (d bookmarkDoc) toDomain() *domain.Bookmark {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Bookmark{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		URL:         d.URL,
		Description: d.Description,
		Tags:        tags,
		// Mongo keeps milliseconds only; normalize to UTC for the wire.
		CreatedAt: d.CreatedAt.UTC(),
	}
}

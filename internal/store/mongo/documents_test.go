package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MrSnakeDoc/tubenotes/internal/domain"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
)

func TestParseID(t *testing.T) {
	valid := primitive.NewObjectID()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid hex", id: valid.Hex(), wantErr: false},
		{name: "uuid", id: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", wantErr: true},
		{name: "short", id: "abc", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := parseID(tt.id)
			if tt.wantErr {
				if !errors.Is(err, store.ErrInvalidID) {
					t.Errorf("parseID(%q) error = %v, want ErrInvalidID", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseID(%q) unexpected error: %v", tt.id, err)
			}
			if oid != valid {
				t.Errorf("parseID(%q) = %v, want %v", tt.id, oid, valid)
			}
		})
	}
}

func TestTagFilter(t *testing.T) {
	if f := tagFilter(""); len(f) != 0 {
		t.Errorf("tagFilter(\"\") = %v, want empty filter", f)
	}
	f := tagFilter("go")
	if f["tags"] != "go" {
		t.Errorf("tagFilter(go) = %v, want {tags: go}", f)
	}
}

func TestBookmarkDocRoundTrip(t *testing.T) {
	desc := "docs"
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &domain.Bookmark{
		Title:       "Go",
		URL:         "https://go.dev/",
		Description: &desc,
		Tags:        []string{"go", "lang"},
		CreatedAt:   created,
	}
	id := primitive.NewObjectID()

	raw, err := bson.Marshal(toBookmarkDoc(id, in))
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	var doc bookmarkDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal() error = %v", err)
	}
	out := doc.toDomain()

	if out.ID != id.Hex() {
		t.Errorf("ID = %q, want %q", out.ID, id.Hex())
	}
	if out.Title != in.Title || out.URL != in.URL {
		t.Errorf("toDomain() = %+v, want fields of %+v", out, in)
	}
	if out.Description == nil || *out.Description != desc {
		t.Errorf("Description = %v, want %q", out.Description, desc)
	}
	if len(out.Tags) != 2 || out.Tags[1] != "lang" {
		t.Errorf("Tags = %v, want [go lang]", out.Tags)
	}
	if !out.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", out.CreatedAt, created)
	}
}

func TestBookmarkDocNilTags(t *testing.T) {
	doc := toBookmarkDoc(primitive.NewObjectID(), &domain.Bookmark{Title: "x"})
	if doc.Tags == nil {
		t.Error("toBookmarkDoc() should store an empty array, not null")
	}
	if got := (bookmarkDoc{}).toDomain(); got.Tags == nil {
		t.Error("toDomain() should never return nil tags")
	}
}

func TestConnectOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ConnectOptions
		wantErr bool
	}{
		{name: "valid", opts: ConnectOptions{URI: "mongodb://x", Database: "db", Timeout: time.Second}},
		{name: "no uri", opts: ConnectOptions{Database: "db", Timeout: time.Second}, wantErr: true},
		{name: "no db", opts: ConnectOptions{URI: "mongodb://x", Timeout: time.Second}, wantErr: true},
		{name: "zero timeout", opts: ConnectOptions{URI: "mongodb://x", Database: "db"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/service"
)

// CreateBookmark answers 400 with the error text for any failure,
// validation or storage.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.BookmarkInput
		if err := decodeJSON(r, w, &in); err != nil {
			writeDetail(w, d.Logger, http.StatusBadRequest, err.Error())
			return
		}

		bookmark, err := d.Service.CreateBookmark(r.Context(), in)
		if err != nil {
			writeDetail(w, d.Logger, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, bookmark)
	}
}

// ListBookmarks supports an optional ?tag= filter. The tag is matched
// exactly as sent, whitespace included.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, d.Service.ListBookmarks(r.Context(), r.URL.Query().Get("tag")))
	}
}

func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Service.DeleteBookmark(r.Context(), chi.URLParam(r, "id")) {
			writeDetail(w, d.Logger, http.StatusNotFound, "Bookmark not found")
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, messageResponse{Message: "Bookmark deleted successfully"})
	}
}

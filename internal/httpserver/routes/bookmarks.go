package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	handleBoth(r, http.MethodPost, "/bookmarks", handlers.CreateBookmark(d))
	handleBoth(r, http.MethodGet, "/bookmarks", handlers.ListBookmarks(d))
	r.Delete("/bookmarks/{id}", handlers.DeleteBookmark(d))
}

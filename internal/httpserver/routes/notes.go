package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/handlers"
)

func init() { Register(registerNotes) }

func registerNotes(r chi.Router, d deps.Deps) {
	handleBoth(r, http.MethodPost, "/notes", handlers.CreateNote(d))
}

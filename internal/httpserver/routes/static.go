package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/handlers"
)

func init() { Register(registerStatic) }

func registerStatic(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Root())
	r.Handle("/static", handlers.Root())
	r.Handle("/static/*", handlers.Static(d))
}

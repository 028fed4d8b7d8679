package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/handlers"
)

func init() { Register(registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	h := handlers.Health(d)
	r.Get("/health", h)
	r.Get("/healthz", h)
}

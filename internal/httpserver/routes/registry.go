package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
)

type (
	Registrar func(r chi.Router, d deps.Deps)
	// Middleware builds a per-route middleware once the deps are known.
	Middleware func(d deps.Deps) func(http.Handler) http.Handler
)

type entry struct {
	reg Registrar
	mws []Middleware
}

var registry []entry

// Register a registrar with optional per-route middlewares.
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws})
}

// Called once from server.New()
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, e := range registry {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		built := make([]func(http.Handler) http.Handler, 0, len(e.mws))
		for _, mw := range e.mws {
			built = append(built, mw(d))
		}
		e.reg(r.With(built...), d) // apply per-route middlewares
	}
}

// handleBoth mounts h on path with and without a trailing slash, so
// "/bookmarks" and "/bookmarks/" reach the same handler.
func handleBoth(r chi.Router, method, path string, h http.Handler) {
	r.Method(method, path, h)
	r.Method(method, path+"/", h)
}

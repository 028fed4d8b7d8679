package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/mw"
)

func init() { Register(registerReadyz, internalOnly) }

// internalOnly keeps the readiness probe to TUBENOTES_ALLOWED_CIDRS.
func internalOnly(d deps.Deps) func(http.Handler) http.Handler {
	return mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)
}

func registerReadyz(r chi.Router, d deps.Deps) {
	r.Get("/readyz", handlers.Readyz(d))
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/mw"
)

func init() {
	Register(registerSummaryCreate, summaryLimit)
	Register(registerSummaries)
}

// summaryLimit throttles summary creation per client IP. A zero rate
// leaves it a passthrough.
func summaryLimit(d deps.Deps) func(http.Handler) http.Handler {
	return mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.SummaryBurst,
		RefillPerIPPerMin: d.SummaryRatePerMin,
		MaxEntries:        10_000,
		TrustProxy:        d.TrustProxy,
	})
}

func registerSummaryCreate(r chi.Router, d deps.Deps) {
	handleBoth(r, http.MethodPost, "/youtube-summary", handlers.CreateSummary(d))
}

func registerSummaries(r chi.Router, d deps.Deps) {
	handleBoth(r, http.MethodGet, "/youtube-summaries", handlers.ListSummaries(d))
	r.Get("/youtube-summary/{id}", handlers.GetSummary(d))
	r.Delete("/youtube-summaries/{id}", handlers.DeleteSummary(d))
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

const readyzPingTimeout = 2 * time.Second

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Store string `json:"store"`
	Error string `json:"error,omitempty"`
}

// Readyz pings the active store. The in-memory fallback is always ready,
// so a degraded deployment shows up as "store": "memory" rather than a 503.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(r.Context(), readyzPingTimeout)
		defer cancel()

		resp := readyzResponse{Ready: true, Store: d.Store.Backend()}
		if err := d.Store.Ping(ctx); err != nil {
			d.Logger.Warn("readiness check failed",
				logger.String("store", resp.Store),
				logger.Error(err))
			resp.Ready = false
			resp.Error = "store unreachable"
			writeJSON(w, d.Logger, http.StatusServiceUnavailable, resp)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, resp)
	}
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/service"
)

type summaryRequest struct {
	URL *string `json:"url"`
}

// CreateSummary always answers 200 once the body is valid. A degraded
// result is returned as-is, without an id.
func CreateSummary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summaryRequest
		if err := decodeJSON(r, w, &req); err != nil {
			writeDetail(w, d.Logger, http.StatusBadRequest, err.Error())
			return
		}
		if req.URL == nil {
			writeDetail(w, d.Logger, http.StatusBadRequest, missingField("url"))
			return
		}

		res := d.Service.CreateSummary(r.Context(), service.SummaryInput{URL: *req.URL})
		if res.Degraded {
			d.Logger.Warn("summary request degraded",
				logger.String("url", *req.URL),
				logger.String("reason", res.Reason))
		}
		writeJSON(w, d.Logger, http.StatusOK, res.Summary)
	}
}

func ListSummaries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, d.Service.ListSummaries(r.Context()))
	}
}

func GetSummary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, ok := d.Service.GetSummary(r.Context(), chi.URLParam(r, "id"))
		if !ok {
			writeDetail(w, d.Logger, http.StatusNotFound, "Summary not found")
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, summary)
	}
}

func DeleteSummary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Service.DeleteSummary(r.Context(), chi.URLParam(r, "id")) {
			writeDetail(w, d.Logger, http.StatusNotFound, "Summary not found")
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, messageResponse{Message: "Summary deleted successfully"})
	}
}

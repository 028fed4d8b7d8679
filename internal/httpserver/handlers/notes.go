package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tubenotes/internal/service"
)

type noteRequest struct {
	Content *string `json:"content"`
}

func CreateNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req noteRequest
		if err := decodeJSON(r, w, &req); err != nil {
			writeDetail(w, d.Logger, http.StatusBadRequest, err.Error())
			return
		}
		if req.Content == nil {
			writeDetail(w, d.Logger, http.StatusBadRequest, missingField("content"))
			return
		}

		note, err := d.Service.CreateNote(r.Context(), service.NoteInput{Content: *req.Content})
		if err != nil {
			writeDetail(w, d.Logger, http.StatusInternalServerError, "Failed to create note")
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, note)
	}
}

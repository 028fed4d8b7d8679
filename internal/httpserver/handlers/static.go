package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/tubenotes/internal/httpserver/deps"
)

// IndexPath is where the root URL redirects to.
const IndexPath = "/static/index.html"

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
	}
}

// Static serves the frontend files under /static/.
func Static(d deps.Deps) http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(d.Static))
}

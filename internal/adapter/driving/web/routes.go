package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the HTML pages and the embedded static assets.
func RegisterRoutes(r chi.Router, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	r.Get("/", h.Gallery)
	r.Get("/projects/{name}", h.ProjectDetail)
}

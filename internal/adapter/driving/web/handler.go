// Package web implements the HTML driving adapter: the project gallery and
// the per-project detail page.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/sebaxe07/portfolio/internal/adapter/driving/web/templates"
	"github.com/sebaxe07/portfolio/internal/adapter/driving/web/templates/pages"
	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/domain/model"
	"github.com/sebaxe07/portfolio/internal/domain/port/driven"
)

// Handler is the web driving adapter that serves HTML pages.
type Handler struct {
	projects *application.ProjectService
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(projects *application.ProjectService, logger *slog.Logger) *Handler {
	return &Handler{
		projects: projects,
		logger:   logger,
	}
}

// Gallery renders the project gallery. The optional filter query selects
// all, featured or a single category; unknown values show everything.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	filter := model.ParseProjectFilter(r.URL.Query().Get("filter"))
	account := h.projects.Account()

	all, err := h.projects.ListDisplayProjects(r.Context())
	if err != nil {
		h.render(w, r, statusForListError(err), "Projects", pages.Gallery(toUnavailableGalleryViewModel(account, filter)))
		return
	}

	h.render(w, r, http.StatusOK, "Projects", pages.Gallery(toGalleryViewModel(account, all, filter)))
}

// ProjectDetail renders one project with its README. A missing README is
// shown as unavailable and never fails the page.
func (h *Handler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	project, err := h.projects.FindProject(r.Context(), name)
	if err != nil {
		h.render(w, r, statusForListError(err), "Projects", pages.Unavailable(r.URL.RequestURI()))
		return
	}
	if project == nil {
		h.render(w, r, http.StatusNotFound, "Not found", pages.NotFound(name))
		return
	}

	readme, ok := h.projects.FetchDescription(r.Context(), project.Name())
	detail := toProjectDetailViewModel(h.projects.Account(), *project, readme, ok)

	h.render(w, r, http.StatusOK, project.Name(), pages.ProjectDetail(detail))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	layout := templates.Layout(title+" | "+h.projects.Account(), h.projects.Account(), body)
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

// statusForListError maps a listing failure to a status. The project
// service has already logged it.
func statusForListError(err error) int {
	if errors.Is(err, driven.ErrSourceUnavailable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/domain/model"
	"github.com/sebaxe07/portfolio/internal/domain/port/driven"
)

// ReadmeRenderer turns a repository README into sanitized HTML.
type ReadmeRenderer func(account, repo, branch, markdown string) string

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	projects     *application.ProjectService
	renderReadme ReadmeRenderer
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	projects *application.ProjectService,
	renderReadme ReadmeRenderer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		projects:     projects,
		renderReadme: renderReadme,
		logger:       logger,
	}
}

// RegisterAPIRoutes mounts the JSON API under /api/v1. Cross-origin
// requests are allowed only from allowedOrigins; an empty list disables CORS.
func RegisterAPIRoutes(r chi.Router, h *Handler, allowedOrigins []string) {
	r.Route("/api/v1", func(r chi.Router) {
		// cors treats an empty origin list as "*".
		if len(allowedOrigins) > 0 {
			r.Use(cors.New(cors.Options{
				AllowedOrigins: allowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodHead},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}).Handler)
		}

		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{name}", h.GetProject)
		r.Get("/projects/{name}/readme", h.GetReadme)
		r.Get("/health", h.Health)
	})
}

// ListProjects returns the surfaced projects narrowed by the optional filter
// query, plus per-filter counts over the full set.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter := model.ParseProjectFilter(r.URL.Query().Get("filter"))

	all, err := h.projects.ListDisplayProjects(r.Context())
	if err != nil {
		h.writeListError(w, err)
		return
	}

	visible := application.FilterProjects(all, filter)
	projects := make([]ProjectResponse, 0, len(visible))
	for _, p := range visible {
		projects = append(projects, toProjectResponse(p))
	}

	counts := make(map[string]int)
	for f, n := range application.FilterCounts(all) {
		counts[string(f)] = n
	}

	writeJSON(w, http.StatusOK, ProjectListResponse{
		Account:  h.projects.Account(),
		Filter:   string(filter),
		Total:    len(all),
		Counts:   counts,
		Projects: projects,
	})
}

// GetProject returns a single surfaced project by repository name.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.findProject(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(*project))
}

// GetReadme returns the README of a surfaced project. A missing README is
// reported as available=false with status 200.
func (h *Handler) GetReadme(w http.ResponseWriter, r *http.Request) {
	project, ok := h.findProject(w, r)
	if !ok {
		return
	}

	name := project.Name()
	resp := ReadmeResponse{Name: name}

	markdown, available := h.projects.FetchDescription(r.Context(), name)
	if available {
		resp.Available = true
		resp.Markdown = markdown
		resp.HTML = h.renderReadme(h.projects.Account(), name, project.Repository.DefaultBranch, markdown)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Health returns a simple liveness response. It never calls GitHub.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// findProject resolves the {name} path value, writing the error response
// itself when ok is false.
func (h *Handler) findProject(w http.ResponseWriter, r *http.Request) (*model.DisplayProject, bool) {
	name := chi.URLParam(r, "name")
	if !model.ValidRepositoryName(name) {
		writeError(w, http.StatusBadRequest, "invalid project name")
		return nil, false
	}

	project, err := h.projects.FindProject(r.Context(), name)
	if err != nil {
		h.writeListError(w, err)
		return nil, false
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return nil, false
	}

	return project, true
}

func (h *Handler) writeListError(w http.ResponseWriter, err error) {
	if errors.Is(err, driven.ErrSourceUnavailable) {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:     "project source unavailable",
			Retryable: true,
		})
		return
	}

	h.logger.Error("failed to list projects", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

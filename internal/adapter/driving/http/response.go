package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sebaxe07/portfolio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body. Retryable marks
// upstream outages the client may retry.
type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// ProjectResponse is the JSON representation of a DisplayProject.
type ProjectResponse struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	FullName        string         `json:"full_name"`
	Description     string         `json:"description"`
	Language        string         `json:"language"`
	LanguageColor   string         `json:"language_color"`
	Topics          []string       `json:"topics"`
	StargazersCount int            `json:"stargazers_count"`
	ForksCount      int            `json:"forks_count"`
	Size            int            `json:"size"`
	DefaultBranch   string         `json:"default_branch"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
	PushedAt        string         `json:"pushed_at"`
	Fork            bool           `json:"fork"`
	HTMLURL         string         `json:"html_url"`
	Homepage        string         `json:"homepage"`
	URL             string         `json:"url"`
	Curated         bool           `json:"curated"`
	Config          ConfigResponse `json:"config"`
}

// ConfigResponse is the resolved curated configuration of a project.
type ConfigResponse struct {
	Featured          bool                   `json:"featured"`
	Priority          int                    `json:"priority"`
	Category          string                 `json:"category"`
	Status            string                 `json:"status"`
	CustomDescription string                 `json:"custom_description,omitempty"`
	LiveURL           string                 `json:"live_url,omitempty"`
	Technologies      []string               `json:"technologies"`
	CustomDetails     *CustomDetailsResponse `json:"custom_details,omitempty"`
}

// CustomDetailsResponse carries the curated media and long-form content.
type CustomDetailsResponse struct {
	Highlights      []string                `json:"highlights"`
	CustomSections  []CustomSectionResponse `json:"custom_sections"`
	Images          []string                `json:"images"`
	Videos          []string                `json:"videos"`
	VimeoVideoIDs   []string                `json:"vimeo_video_ids"`
	FigmaURL        string                  `json:"figma_url,omitempty"`
	FigmaDeckURL    string                  `json:"figma_deck_url,omitempty"`
	BehanceURL      string                  `json:"behance_url,omitempty"`
	AdditionalLinks []LinkResponse          `json:"additional_links"`
}

// CustomSectionResponse is a titled Markdown section.
type CustomSectionResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LinkResponse is an additional outbound link.
type LinkResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ProjectListResponse is the body of the project listing endpoint. Counts
// are computed over the unfiltered set.
type ProjectListResponse struct {
	Account  string            `json:"account"`
	Filter   string            `json:"filter"`
	Total    int               `json:"total"`
	Counts   map[string]int    `json:"counts"`
	Projects []ProjectResponse `json:"projects"`
}

// ReadmeResponse is the body of the README endpoint.
type ReadmeResponse struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Markdown  string `json:"markdown"`
	HTML      string `json:"html"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toProjectResponse converts a DisplayProject to its JSON representation.
// Slices are never nil so clients always see arrays.
func toProjectResponse(p model.DisplayProject) ProjectResponse {
	return ProjectResponse{
		ID:              p.Repository.ID,
		Name:            p.Repository.Name,
		FullName:        p.Repository.FullName,
		Description:     p.DisplayDescription(),
		Language:        p.Repository.Language,
		LanguageColor:   model.LanguageColor(p.Repository.Language),
		Topics:          nonNil(p.Repository.Topics),
		StargazersCount: p.Repository.StargazersCount,
		ForksCount:      p.Repository.ForksCount,
		Size:            p.Repository.Size,
		DefaultBranch:   p.Repository.DefaultBranch,
		CreatedAt:       formatTime(p.Repository.CreatedAt),
		UpdatedAt:       formatTime(p.Repository.UpdatedAt),
		PushedAt:        formatTime(p.Repository.PushedAt),
		Fork:            p.Repository.Fork,
		HTMLURL:         p.Repository.HTMLURL,
		Homepage:        p.Repository.Homepage,
		URL:             p.PrimaryURL(),
		Curated:         p.Curated,
		Config:          toConfigResponse(p.Config),
	}
}

func toConfigResponse(c model.CuratedConfig) ConfigResponse {
	resp := ConfigResponse{
		Featured:          c.Featured,
		Priority:          c.Priority,
		Category:          string(c.Category),
		Status:            string(c.Status),
		CustomDescription: c.CustomDescription,
		LiveURL:           c.LiveURL,
		Technologies:      nonNil(c.Technologies),
	}
	if c.CustomDetails == nil {
		return resp
	}

	d := c.CustomDetails
	details := &CustomDetailsResponse{
		Highlights:      nonNil(d.Highlights),
		CustomSections:  make([]CustomSectionResponse, 0, len(d.CustomSections)),
		Images:          nonNil(d.Images),
		Videos:          nonNil(d.Videos),
		VimeoVideoIDs:   nonNil(d.VimeoVideoIDs),
		FigmaURL:        d.FigmaURL,
		FigmaDeckURL:    d.FigmaDeckURL,
		BehanceURL:      d.BehanceURL,
		AdditionalLinks: make([]LinkResponse, 0, len(d.AdditionalLinks)),
	}
	for _, s := range d.CustomSections {
		details.CustomSections = append(details.CustomSections, CustomSectionResponse{Title: s.Title, Content: s.Content})
	}
	for _, l := range d.AdditionalLinks {
		details.AdditionalLinks = append(details.AdditionalLinks, LinkResponse{Title: l.Title, URL: l.URL, Description: l.Description})
	}
	resp.CustomDetails = details

	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// formatTime renders t as RFC 3339 in UTC, or "" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

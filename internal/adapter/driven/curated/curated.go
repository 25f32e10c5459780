// Package curated loads the hand-authored project metadata table.
package curated

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sebaxe07/portfolio/internal/domain/model"
)

//go:embed projects.yaml
var defaultTable []byte

// document is the YAML shape of the curated table.
type document struct {
	Projects map[string]entry `yaml:"projects"`
}

type entry struct {
	Featured          bool          `yaml:"featured"`
	Priority          *int          `yaml:"priority"`
	Category          string        `yaml:"category"`
	Status            string        `yaml:"status"`
	Hidden            bool          `yaml:"hidden"`
	CustomDescription string        `yaml:"customDescription"`
	LiveURL           string        `yaml:"liveUrl"`
	Technologies      []string      `yaml:"technologies"`
	CustomDetails     *detailsEntry `yaml:"customDetails"`
}

type detailsEntry struct {
	Highlights      []string       `yaml:"highlights"`
	CustomSections  []sectionEntry `yaml:"customSections"`
	Images          []string       `yaml:"images"`
	Videos          []string       `yaml:"videos"`
	VimeoVideoID    string         `yaml:"vimeoVideoId"`
	VimeoVideoIDs   []string       `yaml:"vimeoVideoIds"`
	FigmaURL        string         `yaml:"figmaUrl"`
	FigmaDeckURL    string         `yaml:"figmaDeckUrl"`
	BehanceURL      string         `yaml:"behanceUrl"`
	AdditionalLinks []linkEntry    `yaml:"additionalLinks"`
}

type sectionEntry struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

type linkEntry struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Default parses the table compiled into the binary.
func Default() (model.CuratedTable, error) {
	return Load(bytes.NewReader(defaultTable))
}

// Load parses a curated table. Unknown keys, unknown categories and statuses,
// and negative priorities are rejected. Omitted fields take the defaults of
// model.DefaultCuratedConfig.
func Load(r io.Reader) (model.CuratedTable, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse curated table: %w", err)
	}

	table := make(model.CuratedTable, len(doc.Projects))
	for name, e := range doc.Projects {
		cfg, err := e.toConfig()
		if err != nil {
			return nil, fmt.Errorf("curated entry %q: %w", name, err)
		}
		table[name] = cfg
	}

	return table, nil
}

func (e entry) toConfig() (model.CuratedConfig, error) {
	cfg := model.DefaultCuratedConfig()
	cfg.Featured = e.Featured
	cfg.Hidden = e.Hidden
	cfg.CustomDescription = e.CustomDescription
	cfg.LiveURL = e.LiveURL
	cfg.Technologies = e.Technologies

	if e.Priority != nil {
		if *e.Priority < 0 {
			return model.CuratedConfig{}, fmt.Errorf("priority must be non-negative, got %d", *e.Priority)
		}
		cfg.Priority = *e.Priority
	}

	if e.Category != "" {
		c := model.Category(e.Category)
		if !c.Valid() {
			return model.CuratedConfig{}, fmt.Errorf("unknown category %q", e.Category)
		}
		cfg.Category = c
	}

	if e.Status != "" {
		s := model.ProjectStatus(e.Status)
		if !s.Valid() {
			return model.CuratedConfig{}, fmt.Errorf("unknown status %q", e.Status)
		}
		cfg.Status = s
	}

	if e.CustomDetails != nil {
		cfg.CustomDetails = e.CustomDetails.toDetails()
	}

	return cfg, nil
}

// toDetails folds the single vimeoVideoId shorthand into the ID list.
func (d *detailsEntry) toDetails() *model.CustomDetails {
	vimeo := d.VimeoVideoIDs
	if len(vimeo) == 0 && d.VimeoVideoID != "" {
		vimeo = []string{d.VimeoVideoID}
	}

	sections := make([]model.CustomSection, 0, len(d.CustomSections))
	for _, s := range d.CustomSections {
		sections = append(sections, model.CustomSection{Title: s.Title, Content: s.Content})
	}

	links := make([]model.Link, 0, len(d.AdditionalLinks))
	for _, l := range d.AdditionalLinks {
		links = append(links, model.Link{Title: l.Title, URL: l.URL, Description: l.Description})
	}

	return &model.CustomDetails{
		Highlights:      d.Highlights,
		CustomSections:  sections,
		Images:          d.Images,
		Videos:          d.Videos,
		VimeoVideoIDs:   vimeo,
		FigmaURL:        d.FigmaURL,
		FigmaDeckURL:    d.FigmaDeckURL,
		BehanceURL:      d.BehanceURL,
		AdditionalLinks: links,
	}
}

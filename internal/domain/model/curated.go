package model

// DefaultPriority ranks unconfigured repositories after every curated one.
const DefaultPriority = 999

// CuratedConfig is hand-authored metadata for one repository, keyed by name.
type CuratedConfig struct {
	Featured          bool
	Priority          int
	Category          Category
	Status            ProjectStatus
	Hidden            bool
	CustomDescription string
	LiveURL           string
	Technologies      []string
	CustomDetails     *CustomDetails
}

// DefaultCuratedConfig returns the config resolved for repositories that have
// no explicit entry.
func DefaultCuratedConfig() CuratedConfig {
	return CuratedConfig{
		Featured: false,
		Priority: DefaultPriority,
		Category: CategoryOther,
		Status:   StatusCompleted,
		Hidden:   false,
	}
}

// CustomDetails is the free-form bundle shown only on the project detail view.
type CustomDetails struct {
	Highlights      []string
	CustomSections  []CustomSection
	Images          []string
	Videos          []string
	VimeoVideoIDs   []string
	FigmaURL        string
	FigmaDeckURL    string
	BehanceURL      string
	AdditionalLinks []Link
}

// HasMedia reports whether any media reference is present.
func (d *CustomDetails) HasMedia() bool {
	if d == nil {
		return false
	}
	return len(d.Images) > 0 || len(d.Videos) > 0 || len(d.VimeoVideoIDs) > 0 ||
		d.FigmaURL != "" || d.FigmaDeckURL != ""
}

// CustomSection is a titled block of Markdown.
type CustomSection struct {
	Title   string
	Content string
}

// Link is an extra outbound link on the detail view.
type Link struct {
	Title       string
	URL         string
	Description string
}

// CuratedTable maps repository names to their curated config. It is built
// once at startup and never mutated afterwards.
type CuratedTable map[string]CuratedConfig

// Lookup returns the explicit entry for name, if any.
func (t CuratedTable) Lookup(name string) (CuratedConfig, bool) {
	cfg, ok := t[name]
	return cfg, ok
}

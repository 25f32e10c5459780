// Package viewmodel defines presentation-ready structs for the HTML pages.
// View models decouple template rendering from domain model types.
package viewmodel

import "html/template"

// ProjectCardViewModel holds presentation-ready data for a gallery card.
type ProjectCardViewModel struct {
	Name          string
	Description   string
	Featured      bool
	Category      string
	CategoryClass string
	Status        string
	StatusClass   string
	Language      string
	LanguageColor string
	Stars         int
	Forks         int
	UpdatedMonth  string // "Jan 2006"
	Technologies  []string
	PrimaryURL    string
	RepositoryURL string
	LiveURL       string
	DetailPath    string
}

// FilterButtonViewModel is one entry of the gallery filter bar.
type FilterButtonViewModel struct {
	Label  string
	Value  string
	Count  int
	Active bool
	Href   string
}

// GalleryViewModel holds everything the gallery page renders.
type GalleryViewModel struct {
	Account       string
	Filters       []FilterButtonViewModel
	Projects      []ProjectCardViewModel
	FeaturedCount int
	Unavailable   bool   // listing failed; show the retry affordance
	RetryHref     string // reloads the current view
}

// SectionViewModel is a curated, titled block of pre-rendered Markdown.
type SectionViewModel struct {
	Title string
	HTML  template.HTML
}

// LinkViewModel is an outbound link on the detail page.
type LinkViewModel struct {
	Title       string
	URL         string
	Description string
}

// EmbedViewModel is an iframe of an external media player or prototype.
type EmbedViewModel struct {
	Title   string
	Src     string
	OpenURL string // "" when there is no separate open link
}

// MediaViewModel groups the media tab content.
type MediaViewModel struct {
	Images []string
	Videos []string
	Embeds []EmbedViewModel
}

// Empty reports whether the media tab has nothing to show.
func (m MediaViewModel) Empty() bool {
	return len(m.Images) == 0 && len(m.Videos) == 0 && len(m.Embeds) == 0
}

// ProjectDetailViewModel holds presentation-ready data for the detail page.
type ProjectDetailViewModel struct {
	ProjectCardViewModel

	FullName        string
	UpdatedDate     string // "January 2, 2006"
	CreatedDate     string
	Topics          []string
	Highlights      []string
	Sections        []SectionViewModel
	Links           []LinkViewModel
	Media           MediaViewModel
	ReadmeHTML      template.HTML
	ReadmeAvailable bool
}

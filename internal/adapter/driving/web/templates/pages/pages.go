// Package pages renders page bodies from embedded html/template files.
package pages

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	vm "github.com/sebaxe07/portfolio/internal/adapter/driving/web/viewmodel"
)

//go:embed *.html
var pageFS embed.FS

var pageTemplates = template.Must(template.New("pages").ParseFS(pageFS, "*.html"))

// Gallery renders the filter bar and the project grid, or the error state
// when the listing is unavailable.
func Gallery(data vm.GalleryViewModel) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("gallery.html"), data)
}

// ProjectDetail renders the overview, README and media sections of one project.
func ProjectDetail(data vm.ProjectDetailViewModel) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("project.html"), data)
}

// NotFound renders the body shown for an unknown or hidden project.
func NotFound(name string) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("notfound.html"), name)
}

// Unavailable renders the retry panel for a failed detail page.
func Unavailable(retryHref string) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("unavailable.html"), retryHref)
}

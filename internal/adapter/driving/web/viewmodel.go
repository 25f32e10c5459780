package web

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	vm "github.com/sebaxe07/portfolio/internal/adapter/driving/web/viewmodel"
	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/domain/model"
)

const (
	cardDateLayout   = "Jan 2006"
	detailDateLayout = "January 2, 2006"
)

var filterLabels = map[model.ProjectFilter]string{
	model.FilterAll:      "All",
	model.FilterFeatured: "Featured",
}

// toProjectCardViewModel converts a DisplayProject to a gallery card.
func toProjectCardViewModel(p model.DisplayProject) vm.ProjectCardViewModel {
	technologies := p.Config.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	return vm.ProjectCardViewModel{
		Name:          p.Name(),
		Description:   p.DisplayDescription(),
		Featured:      p.Config.Featured,
		Category:      string(p.Config.Category),
		CategoryClass: categoryClass(p.Config.Category),
		Status:        string(p.Config.Status),
		StatusClass:   statusClass(p.Config.Status),
		Language:      p.Repository.Language,
		LanguageColor: model.LanguageColor(p.Repository.Language),
		Stars:         p.Repository.StargazersCount,
		Forks:         p.Repository.ForksCount,
		UpdatedMonth:  formatDate(p.Repository.UpdatedAt, cardDateLayout),
		Technologies:  technologies,
		PrimaryURL:    p.PrimaryURL(),
		RepositoryURL: p.Repository.HTMLURL,
		LiveURL:       p.Config.LiveURL,
		DetailPath:    "/projects/" + url.PathEscape(p.Name()),
	}
}

// toGalleryViewModel builds the gallery page from the full project set and
// the active filter. Counts are computed over the full set.
func toGalleryViewModel(account string, all []model.DisplayProject, filter model.ProjectFilter) vm.GalleryViewModel {
	visible := application.FilterProjects(all, filter)

	cards := make([]vm.ProjectCardViewModel, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, toProjectCardViewModel(p))
	}

	return vm.GalleryViewModel{
		Account:       account,
		Filters:       toFilterButtons(all, filter),
		Projects:      cards,
		FeaturedCount: application.CountFeatured(all),
	}
}

// toUnavailableGalleryViewModel is the gallery error state.
func toUnavailableGalleryViewModel(account string, filter model.ProjectFilter) vm.GalleryViewModel {
	return vm.GalleryViewModel{
		Account:     account,
		Filters:     toFilterButtons(nil, filter),
		Projects:    []vm.ProjectCardViewModel{},
		Unavailable: true,
		RetryHref:   filterHref(filter),
	}
}

// toFilterButtons lists all, featured and every category, in that order.
func toFilterButtons(all []model.DisplayProject, active model.ProjectFilter) []vm.FilterButtonViewModel {
	counts := application.FilterCounts(all)

	values := make([]model.ProjectFilter, 0, 2+len(model.Categories))
	values = append(values, model.FilterAll, model.FilterFeatured)
	for _, c := range model.Categories {
		values = append(values, model.ProjectFilter(c))
	}

	buttons := make([]vm.FilterButtonViewModel, 0, len(values))
	for _, v := range values {
		buttons = append(buttons, vm.FilterButtonViewModel{
			Label:  filterLabel(v),
			Value:  string(v),
			Count:  counts[v],
			Active: v == active,
			Href:   filterHref(v),
		})
	}
	return buttons
}

func filterLabel(f model.ProjectFilter) string {
	if label, ok := filterLabels[f]; ok {
		return label
	}
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func filterHref(f model.ProjectFilter) string {
	if f == model.FilterAll || f == "" {
		return "/"
	}
	return "/?filter=" + url.QueryEscape(string(f))
}

// toProjectDetailViewModel converts a DisplayProject plus its README into
// the detail page. readme is only rendered when ok is true.
func toProjectDetailViewModel(account string, p model.DisplayProject, readme string, ok bool) vm.ProjectDetailViewModel {
	topics := p.Repository.Topics
	if topics == nil {
		topics = []string{}
	}

	detail := vm.ProjectDetailViewModel{
		ProjectCardViewModel: toProjectCardViewModel(p),
		FullName:             p.Repository.FullName,
		UpdatedDate:          formatDate(p.Repository.UpdatedAt, detailDateLayout),
		CreatedDate:          formatDate(p.Repository.CreatedAt, detailDateLayout),
		Topics:               topics,
		Highlights:           []string{},
		Sections:             []vm.SectionViewModel{},
		Links:                []vm.LinkViewModel{},
		ReadmeAvailable:      ok,
	}

	if ok {
		base := ReadmeBase{Account: account, Repo: p.Name(), Branch: p.Repository.DefaultBranch}
		detail.ReadmeHTML = template.HTML(RenderReadme(readme, base)) //nolint:gosec // sanitized by bluemonday
	}

	d := p.Config.CustomDetails
	if d == nil {
		return detail
	}

	detail.Highlights = append(detail.Highlights, d.Highlights...)
	for _, s := range d.CustomSections {
		detail.Sections = append(detail.Sections, vm.SectionViewModel{
			Title: s.Title,
			HTML:  template.HTML(RenderMarkdown(s.Content)), //nolint:gosec // sanitized by bluemonday
		})
	}
	if d.BehanceURL != "" {
		detail.Links = append(detail.Links, vm.LinkViewModel{
			Title: "Behance Portfolio",
			URL:   d.BehanceURL,
		})
	}
	for _, l := range d.AdditionalLinks {
		detail.Links = append(detail.Links, vm.LinkViewModel{
			Title:       l.Title,
			URL:         l.URL,
			Description: l.Description,
		})
	}
	detail.Media = toMediaViewModel(d)

	return detail
}

func toMediaViewModel(d *model.CustomDetails) vm.MediaViewModel {
	media := vm.MediaViewModel{
		Images: append([]string{}, d.Images...),
		Videos: append([]string{}, d.Videos...),
		Embeds: []vm.EmbedViewModel{},
	}

	for i, id := range d.VimeoVideoIDs {
		media.Embeds = append(media.Embeds, vm.EmbedViewModel{
			Title:   "Vimeo Video",
			Src:     vimeoEmbedURL(id, i == 0),
			OpenURL: "https://vimeo.com/" + url.PathEscape(id),
		})
	}
	if d.FigmaURL != "" {
		media.Embeds = append(media.Embeds, vm.EmbedViewModel{
			Title:   "Interactive Prototype",
			Src:     figmaEmbedURL(d.FigmaURL),
			OpenURL: figmaOpenURL(d.FigmaURL, "proto"),
		})
	}
	if d.FigmaDeckURL != "" {
		media.Embeds = append(media.Embeds, vm.EmbedViewModel{
			Title:   "Presentation Deck",
			Src:     d.FigmaDeckURL,
			OpenURL: figmaOpenURL(d.FigmaDeckURL, "deck"),
		})
	}

	return media
}

// vimeoEmbedURL builds the player URL. Only the first video autoplays.
func vimeoEmbedURL(id string, autoplay bool) string {
	q := url.Values{}
	q.Set("badge", "0")
	q.Set("autopause", "0")
	q.Set("muted", "1")
	q.Set("loop", "1")
	if autoplay {
		q.Set("autoplay", "1")
	} else {
		q.Set("autoplay", "0")
	}
	return "https://player.vimeo.com/video/" + url.PathEscape(id) + "?" + q.Encode()
}

// figmaEmbedURL returns embed.figma.com URLs as is and wraps anything else
// in the legacy share embed.
func figmaEmbedURL(raw string) string {
	if strings.Contains(raw, "embed.figma.com") {
		return raw
	}
	return "https://www.figma.com/embed?embed_host=share&url=" + url.QueryEscape(raw)
}

// figmaOpenURL maps an embed.figma.com/{kind}/ URL back to www.figma.com.
func figmaOpenURL(raw, kind string) string {
	return strings.Replace(raw, "embed.figma.com/"+kind+"/", "www.figma.com/"+kind+"/", 1)
}

func categoryClass(c model.Category) string {
	switch c {
	case model.CategoryWeb, model.CategoryMobile, model.CategoryDesktop,
		model.CategoryRobotics, model.CategoryUnity:
		return "badge-category-" + string(c)
	default:
		return "badge-category-other"
	}
}

func statusClass(s model.ProjectStatus) string {
	switch s {
	case model.StatusCompleted:
		return "badge-status-completed"
	case model.StatusInProgress:
		return "badge-status-in-progress"
	case model.StatusArchived:
		return "badge-status-archived"
	default:
		return "badge-status-unknown"
	}
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(layout)
}

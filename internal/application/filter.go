package application

import "github.com/sebaxe07/portfolio/internal/domain/model"

// MatchesFilter reports whether p is shown under filter.
func MatchesFilter(p model.DisplayProject, filter model.ProjectFilter) bool {
	switch filter {
	case model.FilterAll:
		return true
	case model.FilterFeatured:
		return p.Config.Featured
	}
	return string(p.Config.Category) == string(filter)
}

// FilterProjects returns the projects matching filter, preserving order.
// The input slice is not modified.
func FilterProjects(all []model.DisplayProject, filter model.ProjectFilter) []model.DisplayProject {
	out := make([]model.DisplayProject, 0, len(all))
	for _, p := range all {
		if MatchesFilter(p, filter) {
			out = append(out, p)
		}
	}
	return out
}

// CountFeatured returns how many projects are featured.
func CountFeatured(all []model.DisplayProject) int {
	n := 0
	for _, p := range all {
		if p.Config.Featured {
			n++
		}
	}
	return n
}

// FilterCounts returns the number of projects under every filter value,
// including categories with zero projects.
func FilterCounts(all []model.DisplayProject) map[model.ProjectFilter]int {
	counts := make(map[model.ProjectFilter]int, len(model.Categories)+2)
	counts[model.FilterAll] = len(all)
	counts[model.FilterFeatured] = CountFeatured(all)
	for _, c := range model.Categories {
		counts[model.ProjectFilter(c)] = 0
	}
	for _, p := range all {
		counts[model.ProjectFilter(p.Config.Category)]++
	}
	return counts
}

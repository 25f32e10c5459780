package application

import (
	"cmp"
	"slices"

	"github.com/sebaxe07/portfolio/internal/domain/model"
)

// ExclusionReason explains why a repository is left out of the gallery.
type ExclusionReason string

const (
	ExcludedNone     ExclusionReason = ""
	ExcludedArchived ExclusionReason = "archived"
	ExcludedDisabled ExclusionReason = "disabled"
	ExcludedFork     ExclusionReason = "fork"
	ExcludedHidden   ExclusionReason = "hidden"
)

// ResolveConfig returns the explicit curated entry for name, or the default
// config. The boolean reports whether an explicit entry existed.
func ResolveConfig(name string, table model.CuratedTable) (model.CuratedConfig, bool) {
	if cfg, ok := table.Lookup(name); ok {
		return cfg, true
	}
	return model.DefaultCuratedConfig(), false
}

// Exclusion applies the inclusion rules to a record and its resolved config.
// Forks need an explicit curated entry; hidden wins over featured.
func Exclusion(repo model.RemoteRepository, cfg model.CuratedConfig, curated bool) ExclusionReason {
	switch {
	case repo.Archived:
		return ExcludedArchived
	case repo.Disabled:
		return ExcludedDisabled
	case repo.Fork && !curated:
		return ExcludedFork
	case cfg.Hidden:
		return ExcludedHidden
	}
	return ExcludedNone
}

// Aggregate merges records with the curated table, drops excluded
// repositories and returns the rest ordered by featured (first), priority
// (ascending), stars (descending). Ties keep input order.
func Aggregate(records []model.RemoteRepository, table model.CuratedTable) []model.DisplayProject {
	projects := make([]model.DisplayProject, 0, len(records))

	for _, repo := range records {
		cfg, curated := ResolveConfig(repo.Name, table)
		if Exclusion(repo, cfg, curated) != ExcludedNone {
			continue
		}
		projects = append(projects, model.DisplayProject{
			Repository: repo,
			Config:     cfg,
			Curated:    curated,
		})
	}

	slices.SortStableFunc(projects, compareProjects)

	return projects
}

func compareProjects(a, b model.DisplayProject) int {
	if a.Config.Featured != b.Config.Featured {
		if a.Config.Featured {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Config.Priority, b.Config.Priority); c != 0 {
		return c
	}
	return cmp.Compare(b.Repository.StargazersCount, a.Repository.StargazersCount)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/sebaxe07/portfolio/internal/domain/model"
	"github.com/sebaxe07/portfolio/internal/domain/port/driven"
)

// ProjectService runs the aggregation pipeline for one account. It holds no
// per-request state: every call lists repositories afresh.
type ProjectService struct {
	source  driven.RepositorySource
	table   model.CuratedTable
	account string
	mode    model.ListMode
	logger  *slog.Logger

	// readmes coalesces concurrent README fetches per repository name.
	readmes singleflight.Group
}

// NewProjectService creates a ProjectService. table is treated as read-only.
func NewProjectService(
	source driven.RepositorySource,
	table model.CuratedTable,
	account string,
	mode model.ListMode,
	logger *slog.Logger,
) *ProjectService {
	if table == nil {
		table = model.CuratedTable{}
	}
	return &ProjectService{
		source:  source,
		table:   table,
		account: account,
		mode:    mode,
		logger:  logger,
	}
}

// Account returns the account whose repositories are listed.
func (s *ProjectService) Account() string {
	return s.account
}

// ListDisplayProjects lists, merges, filters and sorts the account's
// repositories. The only error it returns wraps driven.ErrSourceUnavailable.
func (s *ProjectService) ListDisplayProjects(ctx context.Context) ([]model.DisplayProject, error) {
	records, err := s.listRepositories(ctx)
	if err != nil {
		return nil, err
	}

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		for _, r := range records {
			cfg, curated := ResolveConfig(r.Name, s.table)
			if reason := Exclusion(r, cfg, curated); reason != ExcludedNone {
				s.logger.Debug("skipping repository", "repo", r.Name, "reason", reason)
			}
		}
	}

	projects := Aggregate(records, s.table)

	s.logger.Debug("projects aggregated",
		"account", s.account,
		"repositories", len(records),
		"surfaced", len(projects),
	)

	return projects, nil
}

// listRepositories applies the listing policy of s.mode.
func (s *ProjectService) listRepositories(ctx context.Context) ([]model.RemoteRepository, error) {
	records, err := s.source.ListRepositories(ctx, s.account)
	if err == nil {
		return records, nil
	}

	if errors.Is(err, driven.ErrSourceUnavailable) {
		s.logger.Error("repository source unavailable", "account", s.account, "error", err)
		return nil, err
	}

	if s.mode == model.ListModeStrict {
		s.logger.Error("listing repositories failed", "account", s.account, "error", err)
		return nil, fmt.Errorf("%w: %w", driven.ErrSourceUnavailable, err)
	}

	s.logger.Error("listing repositories failed, serving empty gallery", "account", s.account, "error", err)
	return []model.RemoteRepository{}, nil
}

// FindProject runs the pipeline and returns the surfaced project called name,
// or nil when no such project is surfaced.
func (s *ProjectService) FindProject(ctx context.Context, name string) (*model.DisplayProject, error) {
	projects, err := s.ListDisplayProjects(ctx)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].Name() == name {
			return &projects[i], nil
		}
	}

	return nil, nil
}

// FetchDescription returns the README of the named repository. Failures are
// logged and reported as ok=false; they never reach the caller as errors.
// Concurrent calls for the same name share one upstream request.
func (s *ProjectService) FetchDescription(ctx context.Context, name string) (string, bool) {
	if !model.ValidRepositoryName(name) {
		s.logger.Debug("readme requested for invalid repository name", "repo", name)
		return "", false
	}

	ch := s.readmes.DoChan(name, func() (any, error) {
		// Shared by all waiters; bounded by the HTTP client timeout.
		return s.source.FetchReadme(context.WithoutCancel(ctx), s.account, name)
	})

	select {
	case <-ctx.Done():
		s.logger.Debug("readme request abandoned", "repo", name, "error", ctx.Err())
		return "", false
	case res := <-ch:
		if res.Err != nil {
			s.logger.Warn("readme unavailable", "repo", name, "error", res.Err)
			return "", false
		}
		text, ok := res.Val.(string)
		return text, ok
	}
}

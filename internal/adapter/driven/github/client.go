// Package github implements the RepositorySource port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"

	"github.com/sebaxe07/portfolio/internal/domain/model"
	"github.com/sebaxe07/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RepositorySource = (*Client)(nil)

// listPageSize is the single page requested from the listing endpoint.
// Accounts with more repositories are truncated to the most recently updated.
const listPageSize = 100

// Client implements the driven.RepositorySource port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. revalidation (every request carries Cache-Control: max-age=0)
//  2. httpcache (ETag-based conditional requests, never served as fresh)
//  3. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  4. go-github (GitHub REST API client, PAT auth when token is set)
//
// An empty token yields an unauthenticated client (60 requests per hour).
func NewClient(token string, timeout time.Duration) *Client {
	rateLimitClient := github_ratelimit.NewClient(newCachingTransport(nil))
	rateLimitClient.Timeout = timeout

	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListRepositories retrieves the repositories owned by account, sorted by
// update recency upstream. A non-2xx answer wraps driven.ErrSourceUnavailable;
// network and decode failures wrap driven.ErrSourceTransport.
func (c *Client) ListRepositories(ctx context.Context, account string) ([]model.RemoteRepository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: gh.ListOptions{
			PerPage: listPageSize,
		},
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		if resp != nil && !isSuccess(resp.StatusCode) {
			return nil, fmt.Errorf("listing repositories for %s: status %d: %w", account, resp.StatusCode, driven.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("listing repositories for %s: %w: %w", account, driven.ErrSourceTransport, err)
	}

	logRateLimit(resp, "users/"+account+"/repos", len(repos))

	result := make([]model.RemoteRepository, 0, len(repos))
	for _, r := range repos {
		result = append(result, mapRepository(r))
	}

	return result, nil
}

// FetchReadme retrieves and decodes the README of account/repoName.
// Every failure wraps driven.ErrDescriptionUnavailable.
func (c *Client) FetchReadme(ctx context.Context, account, repoName string) (string, error) {
	content, resp, err := c.gh.Repositories.GetReadme(ctx, account, repoName, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return "", fmt.Errorf("fetching readme for %s/%s (status %d): %w: %w", account, repoName, status, driven.ErrDescriptionUnavailable, err)
	}

	logRateLimit(resp, "repos/"+account+"/"+repoName+"/readme", 1)

	if content == nil {
		return "", fmt.Errorf("fetching readme for %s/%s: empty payload: %w", account, repoName, driven.ErrDescriptionUnavailable)
	}

	text, err := decodeContent(content.GetEncoding(), content.Content)
	if err != nil {
		return "", fmt.Errorf("decoding readme for %s/%s: %w: %w", account, repoName, driven.ErrDescriptionUnavailable, err)
	}

	return text, nil
}

// mapRepository converts a go-github Repository to a domain RemoteRepository.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapRepository(r *gh.Repository) model.RemoteRepository {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}

	return model.RemoteRepository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.GetDescription(),
		Language:        r.GetLanguage(),
		Topics:          topics,
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		Size:            r.GetSize(),
		DefaultBranch:   r.GetDefaultBranch(),
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		PushedAt:        r.GetPushedAt().Time,
		Fork:            r.GetFork(),
		Archived:        r.GetArchived(),
		Disabled:        r.GetDisabled(),
		Private:         r.GetPrivate(),
		HTMLURL:         r.GetHTMLURL(),
		Homepage:        r.GetHomepage(),
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

package driven

import (
	"context"
	"errors"

	"github.com/sebaxe07/portfolio/internal/domain/model"
)

// Sentinel errors returned by RepositorySource implementations.
var (
	// ErrSourceUnavailable indicates the listing endpoint answered with a
	// non-success status.
	ErrSourceUnavailable = errors.New("repository source unavailable")

	// ErrSourceTransport indicates the listing call failed before a usable
	// response arrived (network error, malformed body).
	ErrSourceTransport = errors.New("repository source transport failure")

	// ErrDescriptionUnavailable indicates the long-form description could not
	// be retrieved or decoded.
	ErrDescriptionUnavailable = errors.New("description unavailable")
)

// RepositorySource defines the driven port for reading repositories of an
// account from the code host.
type RepositorySource interface {
	// ListRepositories returns up to 100 repositories of account, most
	// recently updated first as delivered by the host. Callers must not rely
	// on the order.
	ListRepositories(ctx context.Context, account string) ([]model.RemoteRepository, error)

	// FetchReadme returns the decoded README of account/repoName.
	// Every failure wraps ErrDescriptionUnavailable.
	FetchReadme(ctx context.Context, account, repoName string) (string, error)
}

package application_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/domain/model"
	"github.com/sebaxe07/portfolio/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockSource struct {
	list   func(ctx context.Context, account string) ([]model.RemoteRepository, error)
	readme func(ctx context.Context, account, repoName string) (string, error)

	listCalls   atomic.Int32
	readmeCalls atomic.Int32
}

func (m *mockSource) ListRepositories(ctx context.Context, account string) ([]model.RemoteRepository, error) {
	m.listCalls.Add(1)
	return m.list(ctx, account)
}

func (m *mockSource) FetchReadme(ctx context.Context, account, repoName string) (string, error) {
	m.readmeCalls.Add(1)
	return m.readme(ctx, account, repoName)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(src *mockSource, table model.CuratedTable, mode model.ListMode) *application.ProjectService {
	return application.NewProjectService(src, table, "sebaxe07", mode, discardLogger())
}

func listReturning(records []model.RemoteRepository, err error) func(context.Context, string) ([]model.RemoteRepository, error) {
	return func(context.Context, string) ([]model.RemoteRepository, error) {
		return records, err
	}
}

// --- ListDisplayProjects ---

func TestListDisplayProjects_PassesAccount(t *testing.T) {
	var gotAccount string
	src := &mockSource{list: func(_ context.Context, account string) ([]model.RemoteRepository, error) {
		gotAccount = account
		return nil, nil
	}}

	svc := newService(src, nil, model.ListModeLenient)
	projects, err := svc.ListDisplayProjects(context.Background())

	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Equal(t, "sebaxe07", gotAccount)
	assert.Equal(t, "sebaxe07", svc.Account())
}

func TestListDisplayProjects_ForkOptInScenario(t *testing.T) {
	src := &mockSource{list: listReturning([]model.RemoteRepository{
		{Name: "X", Fork: false, Archived: false, Disabled: false},
		{Name: "Y", Fork: true, Archived: false, Disabled: false},
	}, nil)}
	table := model.CuratedTable{
		"Y": {Featured: true, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted, Hidden: false},
	}

	projects, err := newService(src, table, model.ListModeLenient).ListDisplayProjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "X"}, names(projects))
}

func TestListDisplayProjects_LenientSwallowsTransportFailure(t *testing.T) {
	src := &mockSource{list: listReturning(nil, fmt.Errorf("dial tcp: connection refused: %w", driven.ErrSourceTransport))}

	projects, err := newService(src, nil, model.ListModeLenient).ListDisplayProjects(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestListDisplayProjects_LenientSwallowsUnclassifiedFailure(t *testing.T) {
	src := &mockSource{list: listReturning(nil, errors.New("boom"))}

	projects, err := newService(src, nil, model.ListModeLenient).ListDisplayProjects(context.Background())

	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestListDisplayProjects_LenientPropagatesSourceUnavailable(t *testing.T) {
	src := &mockSource{list: listReturning(nil, fmt.Errorf("status 503: %w", driven.ErrSourceUnavailable))}

	projects, err := newService(src, nil, model.ListModeLenient).ListDisplayProjects(context.Background())

	assert.Nil(t, projects)
	require.Error(t, err)
	assert.ErrorIs(t, err, driven.ErrSourceUnavailable)
}

func TestListDisplayProjects_StrictPropagatesTransportAsSourceUnavailable(t *testing.T) {
	cause := fmt.Errorf("decode: %w", driven.ErrSourceTransport)
	src := &mockSource{list: listReturning(nil, cause)}

	projects, err := newService(src, nil, model.ListModeStrict).ListDisplayProjects(context.Background())

	assert.Nil(t, projects)
	require.Error(t, err)
	assert.ErrorIs(t, err, driven.ErrSourceUnavailable)
	assert.ErrorIs(t, err, driven.ErrSourceTransport)
}

func TestListDisplayProjects_RefetchesEveryCall(t *testing.T) {
	src := &mockSource{list: listReturning([]model.RemoteRepository{{Name: "a"}}, nil)}
	svc := newService(src, nil, model.ListModeLenient)

	for range 3 {
		_, err := svc.ListDisplayProjects(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), src.listCalls.Load())
}

// --- FindProject ---

func TestFindProject(t *testing.T) {
	hiddenFork := model.RemoteRepository{Name: "upstream-lib", Fork: true}
	src := &mockSource{list: listReturning([]model.RemoteRepository{{Name: "site", StargazersCount: 2}, hiddenFork}, nil)}
	svc := newService(src, nil, model.ListModeLenient)

	found, err := svc.FindProject(context.Background(), "site")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "site", found.Name())
	assert.Equal(t, model.DefaultCuratedConfig(), found.Config)

	missing, err := svc.FindProject(context.Background(), "upstream-lib")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindProject_PropagatesSourceUnavailable(t *testing.T) {
	src := &mockSource{list: listReturning(nil, driven.ErrSourceUnavailable)}

	found, err := newService(src, nil, model.ListModeLenient).FindProject(context.Background(), "site")

	assert.Nil(t, found)
	assert.ErrorIs(t, err, driven.ErrSourceUnavailable)
}

// --- FetchDescription ---

func TestFetchDescription_Success(t *testing.T) {
	var gotAccount, gotRepo string
	src := &mockSource{readme: func(_ context.Context, account, repoName string) (string, error) {
		gotAccount, gotRepo = account, repoName
		return "# café — 日本語", nil
	}}

	text, ok := newService(src, nil, model.ListModeLenient).FetchDescription(context.Background(), "site")

	assert.True(t, ok)
	assert.Equal(t, "# café — 日本語", text)
	assert.Equal(t, "sebaxe07", gotAccount)
	assert.Equal(t, "site", gotRepo)
}

func TestFetchDescription_FailureDegradesSilently(t *testing.T) {
	src := &mockSource{readme: func(context.Context, string, string) (string, error) {
		return "", fmt.Errorf("status 404: %w", driven.ErrDescriptionUnavailable)
	}}

	text, ok := newService(src, nil, model.ListModeStrict).FetchDescription(context.Background(), "site")

	assert.False(t, ok)
	assert.Equal(t, "", text)
}

func TestFetchDescription_InvalidNameSkipsUpstream(t *testing.T) {
	src := &mockSource{readme: func(context.Context, string, string) (string, error) {
		return "unexpected", nil
	}}

	text, ok := newService(src, nil, model.ListModeLenient).FetchDescription(context.Background(), "../../orgs")

	assert.False(t, ok)
	assert.Equal(t, "", text)
	assert.Equal(t, int32(0), src.readmeCalls.Load())
}

func TestFetchDescription_CoalescesConcurrentCalls(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	src := &mockSource{readme: func(context.Context, string, string) (string, error) {
		once.Do(func() { close(started) })
		<-release
		return "shared", nil
	}}
	svc := newService(src, nil, model.ListModeLenient)

	const callers = 5
	results := make(chan string, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		text, _ := svc.FetchDescription(context.Background(), "site")
		results <- text
	}()
	<-started

	for range callers - 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, _ := svc.FetchDescription(context.Background(), "site")
			results <- text
		}()
	}

	// Give the followers time to join the in-flight fetch.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for text := range results {
		assert.Equal(t, "shared", text)
	}
	assert.Equal(t, int32(1), src.readmeCalls.Load())
}

func TestFetchDescription_CallerCancellation(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	src := &mockSource{readme: func(context.Context, string, string) (string, error) {
		<-release
		return "late", nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	text, ok := newService(src, nil, model.ListModeLenient).FetchDescription(ctx, "site")

	assert.False(t, ok)
	assert.Equal(t, "", text)
}

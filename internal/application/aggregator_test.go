package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/domain/model"
)

func repo(name string, stars int) model.RemoteRepository {
	return model.RemoteRepository{
		Name:            name,
		FullName:        "sebaxe07/" + name,
		StargazersCount: stars,
		HTMLURL:         "https://github.com/sebaxe07/" + name,
	}
}

func names(projects []model.DisplayProject) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name())
	}
	return out
}

func TestAggregate_ExcludesArchivedAndDisabled(t *testing.T) {
	archived := repo("archived", 50)
	archived.Archived = true
	disabled := repo("disabled", 50)
	disabled.Disabled = true
	live := repo("live", 1)

	// Even a featured curated entry cannot bring these back.
	table := model.CuratedTable{
		"archived": {Featured: true, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted},
		"disabled": {Featured: true, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted},
	}

	got := application.Aggregate([]model.RemoteRepository{archived, disabled, live}, table)

	assert.Equal(t, []string{"live"}, names(got))
}

func TestAggregate_ForkRequiresCuratedEntry(t *testing.T) {
	plainFork := repo("plain-fork", 10)
	plainFork.Fork = true
	curatedFork := repo("curated-fork", 0)
	curatedFork.Fork = true

	table := model.CuratedTable{
		// Default-shaped entry still counts as an explicit opt-in.
		"curated-fork": model.DefaultCuratedConfig(),
	}

	got := application.Aggregate([]model.RemoteRepository{plainFork, curatedFork}, table)

	require.Len(t, got, 1)
	assert.Equal(t, "curated-fork", got[0].Name())
	assert.True(t, got[0].Curated)
}

func TestAggregate_HiddenOverridesFeatured(t *testing.T) {
	table := model.CuratedTable{
		"secret": {Featured: true, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted, Hidden: true},
	}

	got := application.Aggregate([]model.RemoteRepository{repo("secret", 100), repo("public", 0)}, table)

	assert.Equal(t, []string{"public"}, names(got))
}

func TestAggregate_SortOrder(t *testing.T) {
	table := model.CuratedTable{
		"A": {Featured: true, Priority: 2, Category: model.CategoryWeb, Status: model.StatusCompleted},
		"B": {Featured: true, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted},
		"C": {Featured: false, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted},
	}

	got := application.Aggregate([]model.RemoteRepository{repo("A", 5), repo("B", 1), repo("C", 100)}, table)

	assert.Equal(t, []string{"B", "A", "C"}, names(got))
}

func TestAggregate_StarsBreakPriorityTies(t *testing.T) {
	got := application.Aggregate([]model.RemoteRepository{repo("few", 1), repo("many", 40), repo("some", 7)}, nil)

	assert.Equal(t, []string{"many", "some", "few"}, names(got))
}

func TestAggregate_CuratedPrioritySortsBeforeDefault(t *testing.T) {
	table := model.CuratedTable{
		"curated": {Priority: 5, Category: model.CategoryMobile, Status: model.StatusInProgress},
	}

	got := application.Aggregate([]model.RemoteRepository{repo("popular", 500), repo("curated", 0)}, table)

	assert.Equal(t, []string{"curated", "popular"}, names(got))
}

func TestAggregate_FullTieKeepsInputOrder(t *testing.T) {
	records := []model.RemoteRepository{repo("first", 3), repo("second", 3), repo("third", 3)}

	for range 20 {
		got := application.Aggregate(records, nil)
		assert.Equal(t, []string{"first", "second", "third"}, names(got))
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := application.Aggregate(nil, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	records := []model.RemoteRepository{repo("low", 1), repo("high", 9)}

	_ = application.Aggregate(records, nil)

	assert.Equal(t, "low", records[0].Name)
	assert.Equal(t, "high", records[1].Name)
}

func TestResolveConfig_Default(t *testing.T) {
	cfg, curated := application.ResolveConfig("unknown", model.CuratedTable{"other": {Featured: true}})

	assert.False(t, curated)
	assert.Equal(t, model.CuratedConfig{
		Featured: false,
		Priority: 999,
		Category: model.CategoryOther,
		Status:   model.StatusCompleted,
		Hidden:   false,
	}, cfg)
}

func TestResolveConfig_Explicit(t *testing.T) {
	want := model.CuratedConfig{Featured: true, Priority: 3, Category: model.CategoryUnity, Status: model.StatusArchived}

	cfg, curated := application.ResolveConfig("game", model.CuratedTable{"game": want})

	assert.True(t, curated)
	assert.Equal(t, want, cfg)
}

func TestExclusion_Reasons(t *testing.T) {
	def := model.DefaultCuratedConfig()

	archivedFork := repo("x", 0)
	archivedFork.Archived = true
	archivedFork.Fork = true
	assert.Equal(t, application.ExcludedArchived, application.Exclusion(archivedFork, def, false))

	disabled := repo("x", 0)
	disabled.Disabled = true
	assert.Equal(t, application.ExcludedDisabled, application.Exclusion(disabled, def, true))

	fork := repo("x", 0)
	fork.Fork = true
	assert.Equal(t, application.ExcludedFork, application.Exclusion(fork, def, false))
	assert.Equal(t, application.ExcludedNone, application.Exclusion(fork, def, true))

	hidden := def
	hidden.Hidden = true
	assert.Equal(t, application.ExcludedHidden, application.Exclusion(repo("x", 0), hidden, true))
}

// TestAggregate_ForkOptInScenario covers a non-fork without config next to a
// curated, featured fork.
func TestAggregate_ForkOptInScenario(t *testing.T) {
	x := model.RemoteRepository{Name: "X"}
	y := model.RemoteRepository{Name: "Y", Fork: true}
	table := model.CuratedTable{
		"Y": {Featured: true, Priority: 1, Category: model.CategoryWeb, Status: model.StatusCompleted, Hidden: false},
	}

	got := application.Aggregate([]model.RemoteRepository{x, y}, table)

	assert.Equal(t, []string{"Y", "X"}, names(got))
	assert.False(t, got[1].Curated)
	assert.Equal(t, model.DefaultCuratedConfig(), got[1].Config)
}

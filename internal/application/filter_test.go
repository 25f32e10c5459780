package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/domain/model"
)

func project(name string, featured bool, category model.Category) model.DisplayProject {
	return model.DisplayProject{
		Repository: model.RemoteRepository{Name: name},
		Config: model.CuratedConfig{
			Featured: featured,
			Priority: model.DefaultPriority,
			Category: category,
			Status:   model.StatusCompleted,
		},
	}
}

func galleryFixture() []model.DisplayProject {
	return []model.DisplayProject{
		project("site", true, model.CategoryWeb),
		project("app", false, model.CategoryMobile),
		project("game", true, model.CategoryUnity),
		project("blog", false, model.CategoryWeb),
		project("misc", false, model.CategoryOther),
	}
}

func TestFilterProjects(t *testing.T) {
	all := galleryFixture()

	tests := []struct {
		filter model.ProjectFilter
		want   []string
	}{
		{model.FilterAll, []string{"site", "app", "game", "blog", "misc"}},
		{model.FilterFeatured, []string{"site", "game"}},
		{model.ProjectFilter(model.CategoryWeb), []string{"site", "blog"}},
		{model.ProjectFilter(model.CategoryRobotics), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, names(application.FilterProjects(all, tt.filter)))
		})
	}
}

func TestFilterProjects_DoesNotModifyInput(t *testing.T) {
	all := galleryFixture()

	_ = application.FilterProjects(all, model.FilterFeatured)

	assert.Equal(t, []string{"site", "app", "game", "blog", "misc"}, names(all))
}

func TestFilterCounts(t *testing.T) {
	counts := application.FilterCounts(galleryFixture())

	assert.Equal(t, 5, counts[model.FilterAll])
	assert.Equal(t, 2, counts[model.FilterFeatured])
	assert.Equal(t, 2, counts[model.ProjectFilter(model.CategoryWeb)])
	assert.Equal(t, 1, counts[model.ProjectFilter(model.CategoryUnity)])

	count, ok := counts[model.ProjectFilter(model.CategoryRobotics)]
	assert.True(t, ok)
	assert.Equal(t, 0, count)
}

func TestCountFeatured(t *testing.T) {
	assert.Equal(t, 2, application.CountFeatured(galleryFixture()))
	assert.Equal(t, 0, application.CountFeatured(nil))
}

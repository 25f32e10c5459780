package model

import (
	"fmt"
	"strings"
)

// Category groups projects in the gallery filter bar.
type Category string

const (
	CategoryWeb      Category = "web"
	CategoryMobile   Category = "mobile"
	CategoryDesktop  Category = "desktop"
	CategoryRobotics Category = "robotics"
	CategoryUnity    Category = "unity"
	CategoryOther    Category = "other"
)

// Categories lists every category in filter-bar order.
var Categories = []Category{
	CategoryWeb,
	CategoryMobile,
	CategoryDesktop,
	CategoryRobotics,
	CategoryUnity,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ProjectStatus is the curated lifecycle label of a project.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusArchived   ProjectStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusArchived:
		return true
	}
	return false
}

// ListMode selects how listing failures reach the caller.
type ListMode string

const (
	// ListModeLenient propagates ErrSourceUnavailable but turns transport and
	// decode failures into an empty list.
	ListModeLenient ListMode = "lenient"
	// ListModeStrict propagates every listing failure as ErrSourceUnavailable.
	ListModeStrict ListMode = "strict"
)

// ParseListMode converts a configuration string into a ListMode.
func ParseListMode(s string) (ListMode, error) {
	switch ListMode(strings.ToLower(strings.TrimSpace(s))) {
	case ListModeLenient:
		return ListModeLenient, nil
	case ListModeStrict:
		return ListModeStrict, nil
	}
	return "", fmt.Errorf("invalid list mode %q: expected lenient or strict", s)
}

// Decode implements envconfig.Decoder.
func (m *ListMode) Decode(value string) error {
	parsed, err := ParseListMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ProjectFilter is the gallery filter value: all, featured, or a category.
type ProjectFilter string

const (
	FilterAll      ProjectFilter = "all"
	FilterFeatured ProjectFilter = "featured"
)

// ParseProjectFilter normalizes a user-supplied filter value.
// Empty or unknown values fall back to FilterAll.
func ParseProjectFilter(s string) ProjectFilter {
	v := strings.ToLower(strings.TrimSpace(s))
	switch ProjectFilter(v) {
	case FilterAll, FilterFeatured:
		return ProjectFilter(v)
	}
	if Category(v).Valid() {
		return ProjectFilter(v)
	}
	return FilterAll
}

package model

import (
	"strings"
	"time"
)

// RemoteRepository is a repository as reported by the GitHub listing endpoint.
// Empty Description, Language and Homepage mean the field was absent upstream.
type RemoteRepository struct {
	ID              int64
	Name            string
	FullName        string
	Description     string
	Language        string
	Topics          []string
	StargazersCount int
	ForksCount      int
	Size            int
	DefaultBranch   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PushedAt        time.Time
	Fork            bool
	Archived        bool
	Disabled        bool
	Private         bool
	HTMLURL         string
	Homepage        string
}

// maxRepositoryNameLength is GitHub's limit on repository names.
const maxRepositoryNameLength = 100

// ValidRepositoryName reports whether name can be a GitHub repository name:
// ASCII letters, digits, '.', '-' and '_', excluding "." and "..".
func ValidRepositoryName(name string) bool {
	if name == "" || name == "." || name == ".." || len(name) > maxRepositoryNameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// maxAccountNameLength is GitHub's limit on user names.
const maxAccountNameLength = 39

// ValidAccountName reports whether name can be a GitHub user name:
// ASCII letters, digits and single inner hyphens.
func ValidAccountName(name string) bool {
	if name == "" || len(name) > maxAccountNameLength {
		return false
	}
	if name[0] == '-' || name[len(name)-1] == '-' || strings.Contains(name, "--") {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sebaxe07/portfolio/internal/domain/model"
)

// namespace prefixes every variable, e.g. PORTFOLIO_LISTEN_ADDR.
const namespace = "PORTFOLIO"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubAccount  string         `envconfig:"GITHUB_ACCOUNT" default:"sebaxe07"`
	GitHubToken    string         `envconfig:"GITHUB_TOKEN"`
	ListenAddr     string         `envconfig:"LISTEN_ADDR" default:"127.0.0.1:8080"`
	LogLevel       string         `envconfig:"LOG_LEVEL" default:"info"`
	ListMode       model.ListMode `envconfig:"LIST_MODE" default:"lenient"`
	RequestTimeout time.Duration  `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	AllowedOrigins []string       `envconfig:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and returns a validated Config.
// A token is optional; without one the GitHub API allows 60 requests per hour.
// Optional variables with defaults: PORTFOLIO_GITHUB_ACCOUNT (sebaxe07),
// PORTFOLIO_LISTEN_ADDR (127.0.0.1:8080), PORTFOLIO_LOG_LEVEL (info),
// PORTFOLIO_LIST_MODE (lenient), PORTFOLIO_REQUEST_TIMEOUT (10s).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg.GitHubAccount = strings.TrimSpace(cfg.GitHubAccount)
	if !model.ValidAccountName(cfg.GitHubAccount) {
		return nil, fmt.Errorf("PORTFOLIO_GITHUB_ACCOUNT has invalid account name %q", cfg.GitHubAccount)
	}

	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("PORTFOLIO_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("PORTFOLIO_LOG_LEVEL: %w", err)
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins

	return &cfg, nil
}

// HasGitHubToken reports whether requests are authenticated.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/sebaxe07/portfolio/internal/adapter/driven/curated"
	githubadapter "github.com/sebaxe07/portfolio/internal/adapter/driven/github"
	httphandler "github.com/sebaxe07/portfolio/internal/adapter/driving/http"
	webhandler "github.com/sebaxe07/portfolio/internal/adapter/driving/web"
	"github.com/sebaxe07/portfolio/internal/application"
	"github.com/sebaxe07/portfolio/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"github_account", cfg.GitHubAccount,
		"authenticated", cfg.HasGitHubToken(),
		"list_mode", cfg.ListMode,
		"request_timeout", cfg.RequestTimeout,
		"allowed_origins", cfg.AllowedOrigins,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Load the compiled-in curated table.
	table, err := curated.Default()
	if err != nil {
		return err
	}
	logger.Info("curated table loaded", "entries", len(table))

	// 4. Wire the GitHub adapter and the project service.
	ghClient := githubadapter.NewClient(cfg.GitHubToken, cfg.RequestTimeout)
	projects := application.NewProjectService(ghClient, table, cfg.GitHubAccount, cfg.ListMode, logger)

	// 5. Register API and page routes.
	r := chi.NewRouter()

	apiHandler := httphandler.NewHandler(projects, renderReadme, logger)
	httphandler.RegisterAPIRoutes(r, apiHandler, cfg.AllowedOrigins)

	webHandler := webhandler.NewHandler(projects, logger)
	webhandler.RegisterRoutes(r, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(r, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 20*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 6. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err, ok := <-serveErr:
		if ok {
			return err
		}
	}

	// 7. Graceful shutdown with 10s timeout for in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func renderReadme(account, repo, branch, markdown string) string {
	return webhandler.RenderReadme(markdown, webhandler.ReadmeBase{Account: account, Repo: repo, Branch: branch})
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/page"
	"github.com/tomtom215/moodflix/internal/recommend"
	"github.com/tomtom215/moodflix/internal/supervisor"
	"github.com/tomtom215/moodflix/internal/supervisor/services"
	"github.com/tomtom215/moodflix/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	baseURL := cfg.BaseURL()
	logging.Info().
		Str("version", version).
		Str("environment", cfg.App.Environment).
		Str("recommend_url", baseURL).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting MoodFlix view server")

	client := recommend.NewClient(baseURL, cfg.Recommend, nil)
	monitor := services.NewUpstreamMonitor(client, services.UpstreamMonitorConfig{
		Timeout: cfg.Recommend.Timeout,
	}, logging.WithComponent("server"))

	srv, err := web.New(web.Options{
		Fetcher:           client,
		Page:              page.Options{GridTier: cfg.Poster.GridTier},
		Health:            monitor,
		Version:           version,
		RequestTimeout:    cfg.Recommend.Timeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitReqs:     cfg.Server.RateLimitReqs,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
		RateLimitDisabled: cfg.Server.RateLimitDisabled,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create view server")
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddMonitorService(monitor)
	tree.AddAPIService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		logging.Warn().Int("count", len(report)).Msg("Services did not stop within the shutdown timeout")
	}
	logging.Info().Msg("MoodFlix view server stopped")
}

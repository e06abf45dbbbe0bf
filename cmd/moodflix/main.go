// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/page"
	"github.com/tomtom215/moodflix/internal/poster"
	"github.com/tomtom215/moodflix/internal/recommend"
	"github.com/tomtom215/moodflix/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "moodflix: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logFile, err := logging.OpenFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
	}()

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    logFile,
	})

	baseURL := cfg.BaseURL()
	logging.Info().
		Str("environment", cfg.App.Environment).
		Str("recommend_url", baseURL).
		Dur("debounce", cfg.TUI.Debounce).
		Msg("Starting MoodFlix terminal client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	client := recommend.NewClient(baseURL, cfg.Recommend, nil)

	opts := tui.Options{
		Context:  ctx,
		Fetcher:  client,
		Pinger:   client,
		Page:     page.Options{GridTier: cfg.Poster.GridTier},
		Debounce: cfg.TUI.Debounce,
	}
	if cfg.Poster.ProbeEnabled {
		checker := poster.NewChecker(poster.CheckerConfig{
			Timeout:       cfg.Poster.ProbeTimeout,
			CacheTTL:      cfg.Poster.ProbeCacheTTL,
			RatePerSecond: cfg.Poster.ProbeRate,
			Burst:         cfg.Poster.ProbeBurst,
		}, nil)
		defer checker.Close()
		opts.Checker = checker
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.TUI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(tui.New(opts), programOpts...).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal client: %w", err)
	}
	logging.Info().Msg("MoodFlix terminal client stopped")
	return nil
}

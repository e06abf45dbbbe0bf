// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package logging provides centralized zerolog-based structured logging for MoodFlix.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once by Init
//   - JSON output for the server, console output for development
//   - File output for the terminal client, which owns stdout and stderr
//   - Context-aware logging with request ID and query sequence propagation
//   - An slog adapter so suture's sutureslog hook logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Recommendation request failed")
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("mood", mood).Msg("Query triggered")  // Correct
//	logging.Info().Str("mood", mood)                         // WRONG - log not emitted
//
// # Thread Safety
//
// All package-level functions are safe for concurrent use.
package logging

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package main is the MoodFlix terminal client.
//
// Type a mood and the client queries the recommendation service after a short
// pause, showing up to twelve recommendation cards and a trend panel with the
// rest. Tab cycles the genre filter; Esc moves focus to the cards, where the
// arrow keys reveal each card's details.
//
// The client owns the terminal, so logs go to logging.file
// (default moodflix.log) instead of stderr.
//
// # Configuration
//
// Koanf v2 layers built-in defaults, an optional config.yaml and environment
// variables. The most useful ones:
//
//	ENVIRONMENT=production        use the production recommendation service
//	RECOMMEND_BASE_URL=...        override the service URL
//	TUI_DEBOUNCE=300ms            pause after typing before a query
//	POSTER_PROBE_ENABLED=false    skip poster image checks
//	LOG_FILE=/tmp/moodflix.log    log destination
package main

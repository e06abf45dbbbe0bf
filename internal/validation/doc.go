// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is configured once with:
//   - a "genre" tag accepting All or one of the enumerated genre labels
//   - JSON field names in error messages (mood, genre, top_n)
//
// The recommendation client validates every QueryParameters value before it is
// sent, and the view server validates the genre query parameter before rendering.
package validation

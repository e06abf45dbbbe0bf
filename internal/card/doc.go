// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package card implements the presentation contract of the two result card variants.
//
// Full cards (primary grid) carry a transient reveal flag driven by pointer
// enter/leave; Compact cards (trend panel) show everything at all times. Both
// substitute a fixed placeholder immediately when the poster is absent or fails to
// load, and never render a missing optional field. Cards are view-local state and
// are rebuilt from the results on every settle.
package card

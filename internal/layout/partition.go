// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package layout splits a ranked result list across the page's display regions.
package layout

const (
	// PrimarySize is the number of results shown in the primary grid.
	PrimarySize = 12

	// TrendingSize is the number of results shown in the trending panel.
	TrendingSize = 3
)

// Partition splits results into the primary grid (the first 12) and the trending
// panel (the next 3), preserving order. Elements past position 14 are dropped.
//
// Both returned slices are non-nil and share no backing array with results, so
// callers may rewrite elements without affecting the input.
func Partition[T any](results []T) (primary, trending []T) {
	primaryEnd := min(len(results), PrimarySize)
	trendingEnd := min(len(results), PrimarySize+TrendingSize)

	primary = append(make([]T, 0, primaryEnd), results[:primaryEnd]...)
	trending = make([]T, 0, TrendingSize)
	if trendingEnd > primaryEnd {
		trending = append(trending, results[primaryEnd:trendingEnd]...)
	}
	return primary, trending
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package models

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// MovieSummary is one recommendation result as returned by the recommendation service.
//
// Upstream data comes from a dataframe export and is loosely typed: the year may arrive
// as a number or a string ("1994"), the rating as a number or a numeric string, and any
// field may be null. UnmarshalJSON normalizes these shapes instead of failing the whole
// result set.
//
// Key Fields:
//   - Genre: comma-joined list; only the first label is used for the card badge
//   - Poster: raw image reference (IMDb URL, TMDB URL, TMDB relative path, "N/A" or empty)
//   - Cast: optional comma-joined credits; empty means absent
type MovieSummary struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Genre    string  `json:"genre"`
	Poster   string  `json:"poster"`
	Rating   float64 `json:"rating"`
	Overview string  `json:"overview"`
	Cast     string  `json:"cast,omitempty"`
}

// UnmarshalJSON decodes a result object, coercing loosely typed fields.
// Only a non-object payload is an error; unparseable scalar fields fall back to zero values.
func (m *MovieSummary) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("movie summary is not an object: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("movie summary is null")
	}

	*m = MovieSummary{
		Title:    stringField(raw, "title"),
		Year:     cast.ToInt(raw["year"]),
		Genre:    stringField(raw, "genre"),
		Poster:   stringField(raw, "poster"),
		Rating:   cast.ToFloat64(raw["rating"]),
		Overview: stringField(raw, "overview"),
		Cast:     stringField(raw, "cast"),
	}

	// ToInt rejects fractional strings such as "1994.0"; retry through float.
	if m.Year == 0 {
		if f, err := cast.ToFloat64E(raw["year"]); err == nil {
			m.Year = int(f)
		}
	}
	return nil
}

// stringField returns the field as a string, or "" when absent or null.
func stringField(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// PrimaryGenre returns the first label of the comma-joined genre list, trimmed.
// Returns "" when the movie has no genre.
func (m MovieSummary) PrimaryGenre() string {
	first, _, _ := strings.Cut(m.Genre, ",")
	return strings.TrimSpace(first)
}

// HasCast reports whether a non-blank cast line is available.
func (m MovieSummary) HasCast() bool {
	return strings.TrimSpace(m.Cast) != ""
}

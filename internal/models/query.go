// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package models

// GenreAll is the sentinel genre meaning "no genre filter". It is sent to the
// service literally as "All".
const GenreAll = "All"

// DefaultTopN is the fixed result-count ceiling requested from the service.
// It covers the primary grid (12) plus the trending panel (3).
const DefaultTopN = 15

// genres lists the selectable genre filters in display order.
var genres = []string{
	GenreAll,
	"Action",
	"Drama",
	"Comedy",
	"Thriller",
	"Adventure",
	"Crime",
	"Romance",
}

// Genres returns the selectable genre filters in display order, starting with GenreAll.
// The returned slice is a copy.
func Genres() []string {
	out := make([]string, len(genres))
	copy(out, genres)
	return out
}

// IsKnownGenre reports whether g is GenreAll or one of the enumerated genre labels.
// Matching is exact (case-sensitive), as the label is forwarded to the service verbatim.
func IsKnownGenre(g string) bool {
	for _, known := range genres {
		if known == g {
			return true
		}
	}
	return false
}

// QueryParameters identifies one recommendation request.
//
// An empty Mood means "do not query"; it is never sent to the service.
type QueryParameters struct {
	Mood  string `json:"mood" validate:"required,max=200"`
	Genre string `json:"genre" validate:"required,genre"`
	TopN  int    `json:"top_n" validate:"min=1,max=100"`
}

// NewQueryParameters builds parameters with the fixed result-count ceiling.
func NewQueryParameters(mood, genre string) QueryParameters {
	return QueryParameters{Mood: mood, Genre: genre, TopN: DefaultTopN}
}

// SameSelection reports whether two parameter sets carry the same (mood, genre) pair.
func (q QueryParameters) SameSelection(other QueryParameters) bool {
	return q.Mood == other.Mood && q.Genre == other.Genre
}

// RecommendResponse is the body returned by GET /recommend.
//
// On ranking failure the service answers HTTP 200 with only Error and Message set;
// that shape decodes to an empty result set.
type RecommendResponse struct {
	Results []MovieSummary `json:"results"`
	Count   *int           `json:"count,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

// ServiceInfo is the body returned by the service health endpoint (GET /).
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

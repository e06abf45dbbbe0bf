// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package poster

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/moodflix/internal/metrics"
)

const (
	// BaselineTier is the canonical IMDb width token every IMDb poster is raised to.
	BaselineTier = 1000

	// DefaultGridTier is the width token requested for the primary grid's larger cards.
	DefaultGridTier = 800

	// TMDBBaseURL is the TMDB image CDN prefix used for site-relative poster paths.
	TMDBBaseURL = "https://image.tmdb.org/t/p"

	// TMDBWidthTier is the canonical TMDB width segment.
	TMDBWidthTier = "w500"

	// imdbVersionMarker is the IMDb (Amazon media) versioning marker that precedes sizing tokens.
	imdbVersionMarker = "._V1_"
)

var (
	imdbSizingToken = regexp.MustCompile(`_V1_UX(\d+)`)
	tmdbHost        = regexp.MustCompile(`image\.tmdb\.org/t/p/`)
	tmdbWidthSeg    = regexp.MustCompile(`/w\d+/`)
)

// Rule is one entry of the resolver's ordered decision list.
// Match decides whether the rule applies; Rewrite produces the resolved URL.
type Rule struct {
	Name    string
	Match   func(raw string) bool
	Rewrite func(raw string) string
}

// DefaultRules returns the ordered rule chain. The first matching rule wins.
//
//  1. imdb_sizing_token: "_V1_UX<n>" present -> every token becomes "_V1_UX1000"
//  2. imdb_version_marker: "._V1_" without a token -> "._V1_UX1000_" inserted after the marker
//  3. tmdb_relative: leading "/" -> "https://image.tmdb.org/t/p/w500" + path
//  4. tmdb_width_tier: TMDB URL -> first "/w<n>/" segment becomes "/w500/"
//
// Empty input is handled before the chain; anything unmatched is returned verbatim.
func DefaultRules() []Rule {
	baseline := "_V1_UX" + strconv.Itoa(BaselineTier)
	return []Rule{
		{
			Name:  "imdb_sizing_token",
			Match: imdbSizingToken.MatchString,
			Rewrite: func(raw string) string {
				return imdbSizingToken.ReplaceAllString(raw, baseline)
			},
		},
		{
			Name: "imdb_version_marker",
			Match: func(raw string) bool {
				return strings.Contains(raw, imdbVersionMarker)
			},
			Rewrite: func(raw string) string {
				return strings.Replace(raw, imdbVersionMarker, "."+baseline+"_", 1)
			},
		},
		{
			Name: "tmdb_relative",
			Match: func(raw string) bool {
				return strings.HasPrefix(raw, "/")
			},
			Rewrite: func(raw string) string {
				return TMDBBaseURL + "/" + TMDBWidthTier + raw
			},
		},
		{
			Name:  "tmdb_width_tier",
			Match: tmdbHost.MatchString,
			Rewrite: func(raw string) string {
				loc := tmdbWidthSeg.FindStringIndex(raw)
				if loc == nil {
					return raw
				}
				return raw[:loc[0]] + "/" + TMDBWidthTier + "/" + raw[loc[1]:]
			},
		},
	}
}

// Resolver maps raw poster references to high-resolution absolute URLs.
// It never fails: unrecognized shapes pass through unchanged.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a resolver over the given ordered rules.
// A nil rule list uses DefaultRules.
func NewResolver(rules []Rule) *Resolver {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Resolver{rules: rules}
}

// Resolve returns the best-effort high-resolution URL for raw.
// The boolean is false when raw is empty, in which case the caller substitutes a placeholder.
func (r *Resolver) Resolve(raw string) (string, bool) {
	url, _, ok := r.resolve(raw)
	return url, ok
}

// resolve also reports which rule matched ("" for pass-through and absent input).
func (r *Resolver) resolve(raw string) (string, string, bool) {
	if raw == "" {
		return "", "", false
	}
	for _, rule := range r.rules {
		if rule.Match(raw) {
			metrics.RecordPosterRewrite(rule.Name)
			return rule.Rewrite(raw), rule.Name, true
		}
	}
	metrics.RecordPosterRewrite("passthrough")
	return raw, "", true
}

var defaultResolver = NewResolver(nil)

// Resolve resolves raw with the default rule chain.
func Resolve(raw string) (string, bool) {
	return defaultResolver.Resolve(raw)
}

// GridPoster raises the first IMDb sizing token in url to at least tier.
// Tokens already at or above tier are left alone, so the grid never receives a
// lower resolution than the resolver's baseline. URLs without a token are unchanged.
func GridPoster(url string, tier int) string {
	loc := imdbSizingToken.FindStringSubmatchIndex(url)
	if loc == nil {
		return url
	}
	current, err := strconv.Atoi(url[loc[2]:loc[3]])
	if err == nil && current >= tier {
		return url
	}
	return url[:loc[2]] + strconv.Itoa(tier) + url[loc[3]:]
}

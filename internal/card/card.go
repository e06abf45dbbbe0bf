// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package card

import (
	"strconv"
	"strings"

	"github.com/tomtom215/moodflix/internal/models"
)

const (
	// FullPlaceholder replaces a full card's poster when it is absent or fails to load.
	FullPlaceholder = "https://placehold.co/400x600/1a1a1a/ffffff?text=No+Poster"

	// CompactPlaceholder replaces a trend card's poster when it is absent or fails to load.
	CompactPlaceholder = "https://upload.wikimedia.org/wikipedia/commons/6/65/No-Image-Placeholder.svg"

	// OverviewLines is the overview clamp on a revealed full card.
	OverviewLines = 3

	// CompactTitleLines is the title clamp on a trend card.
	CompactTitleLines = 2

	// UntitledLabel is shown for a result with an empty title.
	UntitledLabel = "Untitled"

	// missingPoster is the upstream marker for "no poster".
	missingPoster = "N/A"
)

// Details holds the display strings of one movie. Empty fields are omitted by renderers.
type Details struct {
	Title    string
	Year     string
	Rating   string
	Overview string
	Cast     string
}

// DetailsOf formats m for display. Year is "" when unknown (0); Cast is "" when absent.
// Rating keeps the precision it was delivered with. Overview is passed through unmodified;
// clamping is the renderer's job.
func DetailsOf(m models.MovieSummary) Details {
	d := Details{
		Title:    strings.TrimSpace(m.Title),
		Rating:   strconv.FormatFloat(m.Rating, 'f', -1, 64),
		Overview: m.Overview,
	}
	if d.Title == "" {
		d.Title = UntitledLabel
	}
	if m.Year > 0 {
		d.Year = strconv.Itoa(m.Year)
	}
	if m.HasCast() {
		d.Cast = strings.TrimSpace(m.Cast)
	}
	return d
}

// poster tracks one card's image source and its placeholder substitution.
type poster struct {
	url         string
	placeholder string
	failed      bool
}

func newPoster(raw, placeholder string) poster {
	p := poster{url: raw, placeholder: placeholder}
	if raw == "" || raw == missingPoster {
		p.failed = true
	}
	return p
}

// URL returns the image to display: the poster, or the placeholder once it has failed.
func (p *poster) URL() string {
	if p.failed {
		return p.placeholder
	}
	return p.url
}

// Full is the primary grid card. Only the poster and genre badge are visible until
// the pointer enters the card; then the detail overlay is shown on top of the poster.
type Full struct {
	movie    models.MovieSummary
	poster   poster
	revealed bool
}

// NewFull creates a full card for m, whose Poster is already resolved.
func NewFull(m models.MovieSummary) *Full {
	return &Full{movie: m, poster: newPoster(m.Poster, FullPlaceholder)}
}

// Movie returns the underlying result.
func (c *Full) Movie() models.MovieSummary { return c.movie }

// PosterURL returns the image to display.
func (c *Full) PosterURL() string { return c.poster.URL() }

// PosterFailed reports whether the placeholder is being shown.
func (c *Full) PosterFailed() bool { return c.poster.failed }

// MarkImageFailed substitutes the placeholder. It is idempotent and never retries.
func (c *Full) MarkImageFailed() { c.poster.failed = true }

// PointerEnter reveals the overlay.
func (c *Full) PointerEnter() { c.revealed = true }

// PointerLeave hides the overlay.
func (c *Full) PointerLeave() { c.revealed = false }

// Revealed reports whether the overlay is visible.
func (c *Full) Revealed() bool { return c.revealed }

// Badge returns the first genre label, or "" when the movie has no genre.
func (c *Full) Badge() string { return c.movie.PrimaryGenre() }

// Details returns the overlay content regardless of reveal state.
// Renderers that hide the overlay with CSS use this.
func (c *Full) Details() Details { return DetailsOf(c.movie) }

// Overlay returns the overlay content and true while the card is revealed.
func (c *Full) Overlay() (Details, bool) {
	if !c.revealed {
		return Details{}, false
	}
	return DetailsOf(c.movie), true
}

// Compact is the trend panel card. All of its information is always visible.
type Compact struct {
	movie  models.MovieSummary
	poster poster
}

// NewCompact creates a trend card for m, whose Poster is already resolved.
func NewCompact(m models.MovieSummary) *Compact {
	return &Compact{movie: m, poster: newPoster(m.Poster, CompactPlaceholder)}
}

// Movie returns the underlying result.
func (c *Compact) Movie() models.MovieSummary { return c.movie }

// PosterURL returns the image to display.
func (c *Compact) PosterURL() string { return c.poster.URL() }

// PosterFailed reports whether the placeholder is being shown.
func (c *Compact) PosterFailed() bool { return c.poster.failed }

// MarkImageFailed substitutes the placeholder. It is idempotent and never retries.
func (c *Compact) MarkImageFailed() { c.poster.failed = true }

// Details returns the card content: title, year and rating.
// Overview and cast are not part of the compact card.
func (c *Compact) Details() Details {
	d := DetailsOf(c.movie)
	d.Overview = ""
	d.Cast = ""
	return d
}

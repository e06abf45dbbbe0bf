// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package card

import (
	"testing"

	"github.com/tomtom215/moodflix/internal/models"
)

func sampleMovie() models.MovieSummary {
	return models.MovieSummary{
		Title:    "The Grand Budapest Hotel",
		Year:     2014,
		Genre:    "Comedy, Drama, Adventure",
		Poster:   "https://m.media-amazon.com/images/M/abc._V1_UX1000_.jpg",
		Rating:   8.1,
		Overview: "A concierge and his lobby boy become embroiled in a theft.",
		Cast:     "Ralph Fiennes, Tony Revolori",
	}
}

func TestFull_RevealLifecycle(t *testing.T) {
	t.Parallel()

	c := NewFull(sampleMovie())

	if c.Revealed() {
		t.Fatal("new card should not be revealed")
	}
	if _, ok := c.Overlay(); ok {
		t.Fatal("Overlay() available before pointer enter")
	}
	if c.Badge() != "Comedy" {
		t.Errorf("Badge() = %q, want Comedy", c.Badge())
	}

	c.PointerEnter()
	overlay, ok := c.Overlay()
	if !ok {
		t.Fatal("Overlay() unavailable while revealed")
	}
	if overlay.Title != "The Grand Budapest Hotel" || overlay.Year != "2014" || overlay.Rating != "8.1" {
		t.Errorf("Overlay() = %+v", overlay)
	}
	if overlay.Cast != "Ralph Fiennes, Tony Revolori" {
		t.Errorf("Overlay().Cast = %q", overlay.Cast)
	}

	c.PointerLeave()
	if c.Revealed() {
		t.Error("card still revealed after pointer leave")
	}
	if _, ok := c.Overlay(); ok {
		t.Error("Overlay() available after pointer leave")
	}
}

func TestFull_PlaceholderSubstitution(t *testing.T) {
	t.Parallel()

	c := NewFull(sampleMovie())
	if c.PosterURL() != sampleMovie().Poster {
		t.Fatalf("PosterURL() = %q, want resolved poster", c.PosterURL())
	}

	c.MarkImageFailed()
	c.MarkImageFailed()
	if c.PosterURL() != FullPlaceholder {
		t.Errorf("PosterURL() after failure = %q, want placeholder", c.PosterURL())
	}
	if !c.PosterFailed() {
		t.Error("PosterFailed() = false after failure")
	}
}

func TestAbsentPosterUsesPlaceholder(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "N/A"} {
		m := sampleMovie()
		m.Poster = raw

		if got := NewFull(m).PosterURL(); got != FullPlaceholder {
			t.Errorf("NewFull(poster=%q).PosterURL() = %q, want full placeholder", raw, got)
		}
		if got := NewCompact(m).PosterURL(); got != CompactPlaceholder {
			t.Errorf("NewCompact(poster=%q).PosterURL() = %q, want compact placeholder", raw, got)
		}
	}
}

func TestDetailsOf_MissingFields(t *testing.T) {
	t.Parallel()

	d := DetailsOf(models.MovieSummary{Title: "  ", Rating: 7})

	if d.Title != UntitledLabel {
		t.Errorf("Title = %q, want %q", d.Title, UntitledLabel)
	}
	if d.Year != "" {
		t.Errorf("Year = %q, want omitted", d.Year)
	}
	if d.Cast != "" {
		t.Errorf("Cast = %q, want omitted", d.Cast)
	}
	if d.Rating != "7" {
		t.Errorf("Rating = %q, want 7", d.Rating)
	}
}

func TestDetailsOf_RatingPrecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating float64
		want   string
	}{
		{8.1, "8.1"},
		{7.25, "7.25"},
		{9, "9"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := DetailsOf(models.MovieSummary{Rating: tt.rating}).Rating; got != tt.want {
			t.Errorf("Rating(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestDetailsOf_OverviewUnmodified(t *testing.T) {
	t.Parallel()

	long := "line one of a very long synopsis that keeps going and going well past three lines of any reasonable card width"
	m := sampleMovie()
	m.Overview = long

	if got := DetailsOf(m).Overview; got != long {
		t.Errorf("Overview mutated: %q", got)
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	c := NewCompact(sampleMovie())
	d := c.Details()

	if d.Title == "" || d.Year != "2014" || d.Rating != "8.1" {
		t.Errorf("Details() = %+v, want title, year and rating", d)
	}
	if d.Overview != "" || d.Cast != "" {
		t.Errorf("compact Details() carries overlay-only fields: %+v", d)
	}

	c.MarkImageFailed()
	if c.PosterURL() != CompactPlaceholder {
		t.Errorf("PosterURL() after failure = %q, want compact placeholder", c.PosterURL())
	}
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package page

import (
	"fmt"

	"github.com/tomtom215/moodflix/internal/card"
	"github.com/tomtom215/moodflix/internal/layout"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/poster"
	"github.com/tomtom215/moodflix/internal/query"
)

// Page copy.
const (
	Brand           = "MoodFlix"
	Hero            = "Discover Movies Based on Your Mood"
	Prompt          = "How are you feeling today?"
	InputHint       = "e.g., happy, sad, excited, thoughtful..."
	LoadingMessage  = "Loading recommendations..."
	EmptyMessage    = "No movies found. Try another mood."
	HeadingMood     = "Recommended for You"
	HeadingDefault  = "Popular Movies"
	TrendingHeading = "Trends Now"
)

// Phase is what the result area shows.
type Phase int

const (
	// PhaseIdle shows the prompt; no mood has been entered.
	PhaseIdle Phase = iota
	// PhaseLoading shows the loading indicator.
	PhaseLoading
	// PhaseEmpty shows the no-results message (zero results or a failed request).
	PhaseEmpty
	// PhaseResults shows the primary grid and the trending panel.
	PhaseResults
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Region identifies one of the two result regions.
type Region int

const (
	RegionPrimary Region = iota
	RegionTrending
)

// PosterTarget is one card poster to verify, tagged with the query it belongs to.
type PosterTarget struct {
	Seq    uint64
	Region Region
	Index  int
	URL    string
}

// Options configures a Page.
type Options struct {
	// Resolver normalizes poster references; nil uses the default rule chain.
	Resolver *poster.Resolver
	// GridTier is the IMDb width tier requested for primary grid posters.
	GridTier int
}

// Page owns the mood and genre inputs, the query lifecycle and the cards built
// from the latest applied results. Like query.Tracker it is driven from one
// event loop and is not safe for concurrent use.
type Page struct {
	mood     string
	genre    string
	tracker  *query.Tracker
	resolver *poster.Resolver
	gridTier int

	primary  []*card.Full
	trending []*card.Compact
}

// New creates an idle page with the genre filter set to All.
func New(opts Options) *Page {
	if opts.Resolver == nil {
		opts.Resolver = poster.NewResolver(nil)
	}
	if opts.GridTier <= 0 {
		opts.GridTier = poster.DefaultGridTier
	}
	return &Page{
		genre:    models.GenreAll,
		tracker:  query.NewTracker(),
		resolver: opts.Resolver,
		gridTier: opts.GridTier,
	}
}

// Mood returns the current mood text.
func (p *Page) Mood() string { return p.mood }

// Genre returns the selected genre filter.
func (p *Page) Genre() string { return p.genre }

// State returns the current query state.
func (p *Page) State() query.State { return p.tracker.State() }

// Seq returns the sequence number of the latest triggered query.
func (p *Page) Seq() uint64 { return p.tracker.Seq() }

// SetMood updates the mood text and reports the request to issue, if any.
func (p *Page) SetMood(mood string) (query.Ticket, bool) {
	p.mood = mood
	return p.sync()
}

// SetGenre selects a genre filter and reports the request to issue, if any.
// Unknown genres are rejected and leave the page unchanged.
func (p *Page) SetGenre(genre string) (query.Ticket, bool, error) {
	if !models.IsKnownGenre(genre) {
		return query.Ticket{}, false, fmt.Errorf("unknown genre %q", genre)
	}
	p.genre = genre
	ticket, ok := p.sync()
	return ticket, ok, nil
}

// Set updates both inputs at once, as a form submission does.
func (p *Page) Set(mood, genre string) (query.Ticket, bool, error) {
	if !models.IsKnownGenre(genre) {
		return query.Ticket{}, false, fmt.Errorf("unknown genre %q", genre)
	}
	p.mood = mood
	p.genre = genre
	ticket, ok := p.sync()
	return ticket, ok, nil
}

// sync feeds the current inputs to the tracker. Leaving the results phase
// discards the cards.
func (p *Page) sync() (query.Ticket, bool) {
	ticket, ok := p.tracker.Update(p.mood, p.genre)
	if p.tracker.State().Status != query.StatusSucceeded {
		p.primary, p.trending = nil, nil
	}
	return ticket, ok
}

// Settle applies a query outcome. Stale outcomes are dropped and reported as false.
// On success every poster is resolved, the list is partitioned and primary grid
// posters are raised to the grid tier before the cards are built.
func (p *Page) Settle(o query.Outcome) bool {
	if !p.tracker.Apply(o) {
		return false
	}

	state := p.tracker.State()
	if state.Status != query.StatusSucceeded {
		p.primary, p.trending = nil, nil
		return true
	}

	resolved := make([]models.MovieSummary, len(state.Results))
	for i, m := range state.Results {
		m.Poster, _ = p.resolver.Resolve(m.Poster)
		resolved[i] = m
	}

	primary, trending := layout.Partition(resolved)

	p.primary = make([]*card.Full, len(primary))
	for i, m := range primary {
		m.Poster = poster.GridPoster(m.Poster, p.gridTier)
		p.primary[i] = card.NewFull(m)
	}
	p.trending = make([]*card.Compact, len(trending))
	for i, m := range trending {
		p.trending[i] = card.NewCompact(m)
	}
	return true
}

// Primary returns the primary grid cards of the applied results.
func (p *Page) Primary() []*card.Full { return p.primary }

// Trending returns the trend panel cards of the applied results.
func (p *Page) Trending() []*card.Compact { return p.trending }

// Heading returns the result area heading. It follows the mood text as typed,
// not the query state.
func (p *Page) Heading() string {
	if p.mood != "" {
		return HeadingMood
	}
	return HeadingDefault
}

// Phase returns what the result area shows.
func (p *Page) Phase() Phase {
	state := p.tracker.State()
	switch {
	case state.Status == query.StatusIdle:
		return PhaseIdle
	case state.Status == query.StatusLoading:
		return PhaseLoading
	case state.Empty():
		return PhaseEmpty
	default:
		return PhaseResults
	}
}

// Hover reveals the full card at index and hides every other one.
// An index outside the grid hides all cards.
func (p *Page) Hover(index int) {
	for i, c := range p.primary {
		if i == index {
			c.PointerEnter()
		} else {
			c.PointerLeave()
		}
	}
}

// PosterTargets lists the card posters still worth probing for the current results.
// Placeholders are skipped.
func (p *Page) PosterTargets() []PosterTarget {
	seq := p.tracker.Seq()
	targets := make([]PosterTarget, 0, len(p.primary)+len(p.trending))
	for i, c := range p.primary {
		if !c.PosterFailed() {
			targets = append(targets, PosterTarget{Seq: seq, Region: RegionPrimary, Index: i, URL: c.PosterURL()})
		}
	}
	for i, c := range p.trending {
		if !c.PosterFailed() {
			targets = append(targets, PosterTarget{Seq: seq, Region: RegionTrending, Index: i, URL: c.PosterURL()})
		}
	}
	return targets
}

// MarkPosterFailed substitutes the placeholder for the card target points at.
// Targets from an earlier query are ignored and reported as false.
func (p *Page) MarkPosterFailed(target PosterTarget) bool {
	if target.Seq != p.tracker.Seq() {
		return false
	}
	switch target.Region {
	case RegionPrimary:
		if target.Index >= 0 && target.Index < len(p.primary) {
			p.primary[target.Index].MarkImageFailed()
			return true
		}
	case RegionTrending:
		if target.Index >= 0 && target.Index < len(p.trending) {
			p.trending[target.Index].MarkImageFailed()
			return true
		}
	}
	return false
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package query

import (
	"context"
	"strings"

	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
)

// Ticket identifies one triggered request.
type Ticket struct {
	Seq    uint64
	Params models.QueryParameters
}

// Tracker is the QueryState machine for one page.
type Tracker struct {
	state State
	seq   uint64
	// last is the selection of the most recent trigger; nil when idle.
	last *models.QueryParameters
}

// NewTracker creates a tracker in the Idle state.
func NewTracker() *Tracker {
	return &Tracker{}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Seq returns the sequence number of the latest trigger (0 before any).
func (t *Tracker) Seq() uint64 {
	return t.seq
}

// Current returns the parameters of the latest trigger, if one is active.
func (t *Tracker) Current() (models.QueryParameters, bool) {
	if t.last == nil {
		return models.QueryParameters{}, false
	}
	return *t.last, true
}

// Update applies a (mood, genre) change and reports whether a request must be issued.
//
// Surrounding whitespace in mood is ignored. An empty mood returns to Idle and
// invalidates any in-flight request. A non-empty mood triggers a new request
// unless the pair equals the latest trigger, including while Loading.
func (t *Tracker) Update(mood, genre string) (Ticket, bool) {
	mood = strings.TrimSpace(mood)
	if genre == "" {
		genre = models.GenreAll
	}

	if mood == "" {
		if t.last != nil || t.state.Status != StatusIdle {
			t.seq++
		}
		t.last = nil
		t.state = State{Status: StatusIdle}
		return Ticket{}, false
	}

	params := models.NewQueryParameters(mood, genre)
	if t.last != nil && t.last.SameSelection(params) {
		return Ticket{}, false
	}

	t.seq++
	t.last = &params
	t.state = State{Status: StatusLoading}
	return Ticket{Seq: t.seq, Params: params}, true
}

// Settle applies the outcome of the request identified by seq.
// It returns false, leaving state untouched, when seq is not the latest trigger.
func (t *Tracker) Settle(seq uint64, results []models.MovieSummary, err error) bool {
	if seq != t.seq || t.state.Status != StatusLoading {
		metrics.RecordQuerySettle(false)
		logging.Debug().Uint64("seq", seq).Uint64("latest", t.seq).Msg("Discarding stale query outcome")
		return false
	}

	metrics.RecordQuerySettle(true)
	if err != nil {
		params := *t.last
		logging.Warn().Err(err).Uint64("seq", seq).Str("mood", params.Mood).Str("genre", params.Genre).Msg("Recommendation request failed")
		t.state = State{Status: StatusFailed, Err: err}
		return true
	}

	if results == nil {
		results = []models.MovieSummary{}
	}
	t.state = State{Status: StatusSucceeded, Results: results}
	return true
}

// Fetcher retrieves recommendations. *recommend.Client implements it.
type Fetcher interface {
	Recommend(ctx context.Context, params models.QueryParameters) ([]models.MovieSummary, error)
}

// Outcome is a settled request, ready to be passed to Tracker.Settle.
type Outcome struct {
	Seq     uint64
	Params  models.QueryParameters
	Results []models.MovieSummary
	Err     error
}

// Execute runs the request for ticket. It blocks and is meant to run off the event loop.
func Execute(ctx context.Context, fetcher Fetcher, ticket Ticket) Outcome {
	ctx = logging.ContextWithQuerySeq(ctx, ticket.Seq)
	results, err := fetcher.Recommend(ctx, ticket.Params)
	return Outcome{Seq: ticket.Seq, Params: ticket.Params, Results: results, Err: err}
}

// Apply settles o on t.
func (t *Tracker) Apply(o Outcome) bool {
	return t.Settle(o.Seq, o.Results, o.Err)
}

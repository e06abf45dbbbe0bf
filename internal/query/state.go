// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package query

import (
	"github.com/tomtom215/moodflix/internal/models"
)

// Status is the phase of the current query.
type Status int

const (
	// StatusIdle means no mood has been supplied; nothing is requested.
	StatusIdle Status = iota
	// StatusLoading means a request is in flight.
	StatusLoading
	// StatusSucceeded means the latest request returned a (possibly empty) result list.
	StatusSucceeded
	// StatusFailed means the latest request failed; the reason is logged only.
	StatusFailed
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is one QueryState value. Results is set only when Status is StatusSucceeded
// and is then never nil; Err is set only when Status is StatusFailed.
type State struct {
	Status  Status
	Results []models.MovieSummary
	Err     error
}

// Settled reports whether the state is a final outcome (Succeeded or Failed).
func (s State) Settled() bool {
	return s.Status == StatusSucceeded || s.Status == StatusFailed
}

// Empty reports whether there is nothing to show: a failure, or a success with
// zero results. Both present identically to the user.
func (s State) Empty() bool {
	return s.Status == StatusFailed || (s.Status == StatusSucceeded && len(s.Results) == 0)
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package tui

import (
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/page"
	"github.com/tomtom215/moodflix/internal/query"
)

// debounceMsg fires when the mood input has been quiet for the debounce interval.
// Only the message carrying the latest id is acted upon.
type debounceMsg struct {
	id   int
	mood string
}

// resultMsg carries a settled recommendation request back to the event loop.
type resultMsg struct {
	outcome query.Outcome
}

// posterMsg carries one poster probe answer.
type posterMsg struct {
	target page.PosterTarget
	ok     bool
}

// pingMsg carries the service health probe answer.
type pingMsg struct {
	info *models.ServiceInfo
	err  error
}

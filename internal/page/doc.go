// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package page composes the recommendation page: the mood and genre inputs, the
query lifecycle, and the two result regions.

A Page turns input changes into query tickets (see package query), and turns
applied outcomes into cards:

	ticket, ok := p.SetMood("happy")
	if ok {
		go func() { outcomes <- query.Execute(ctx, client, ticket) }()
	}
	...
	p.Settle(<-outcomes)

On a successful outcome every poster is resolved, the list is split into the
primary grid (first 12) and the trending panel (next 3), and primary grid
posters are raised to the configured grid tier.

The result area is in exactly one Phase at a time: idle prompt, loading
indicator, empty message, or the result regions. Failed requests render like an
empty result set.

Poster probes are tagged with the query sequence number through PosterTarget,
so a probe answer arriving after a newer query is ignored by MarkPosterFailed.

Page is not safe for concurrent use; the terminal UI and the HTTP handler both
drive it from a single goroutine.
*/
package page

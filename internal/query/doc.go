// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package query owns the recommendation query lifecycle.

A Tracker holds the single current State and the identity of the most recently
triggered request. It is driven from one event loop:

	ticket, ok := tracker.Update(mood, genre) // on every input change
	if ok {
	    go func() { events <- query.Execute(ctx, client, ticket) }()
	}
	...
	tracker.Settle(outcome.Seq, outcome.Results, outcome.Err) // on the loop

State Machine:

	Idle ──mood set──▶ Loading ──response──▶ Succeeded
	  ▲                  │  ▲                   │
	  │                  │  └──mood/genre change┘
	  │                  └──error──▶ Failed ──mood/genre change──▶ Loading
	  └──────────── mood cleared (from any state) ───────────────┘

Every trigger increments a sequence number. Settle applies an outcome only when
its sequence number matches the latest trigger; anything else is stale and is
dropped, so a slow early request can never overwrite a later one. The
underlying transfer is not aborted.

Tracker is not safe for concurrent use. All calls belong on the owning loop.
*/
package query

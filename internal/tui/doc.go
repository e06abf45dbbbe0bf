// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package tui is the interactive terminal front end, built on Bubble Tea.

The model wraps a page.Page and runs it from the Bubble Tea event loop: key
presses edit the mood or move the genre filter, and requests, poster probes and
the startup health probe run as commands whose answers return as messages.

# Focus

The model starts in typing mode with the mood input focused:

	enter       request immediately, skipping the debounce
	tab         next genre (shift+tab: previous), requested immediately
	esc / down  switch to browsing

In browsing mode the arrow keys (or h/j/k/l) move a cursor over the primary
grid. The card under the cursor is the revealed one: inside the same box its
poster marker gives way to the title, year, rating, overview (clamped to three
lines) and cast. Every card keeps the same size either way. "/" or "i" returns to typing.

# Debounce

Mood keystrokes are debounced: each change schedules a tick and only the tick
carrying the latest id applies the typed value. With a zero debounce every
change is applied at once. Unchanged (mood, genre) pairs never issue a request.

# Posters

A terminal cannot show images, so each card shows a poster marker. When a
PosterChecker is configured, every poster of an applied result set is probed
and cards whose image would not load switch to the placeholder marker.
*/
package tui

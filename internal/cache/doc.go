// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package cache provides a small generic in-memory TTL cache.

It backs the poster image prober: probe outcomes are cached per URL so the same
poster is not re-checked every time a result set containing it is displayed.
Recommendation results themselves are never cached.

Thread Safety:

All methods are safe for concurrent use. Call Stop when the cache is no longer
needed to end its cleanup goroutine.
*/
package cache

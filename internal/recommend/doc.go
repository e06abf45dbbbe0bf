// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package recommend is the HTTP client for the external mood recommendation service.

The service ranks movies by mood; this package only consumes its contract:

	GET <base>/recommend?mood=<mood>&genre=<genre>&top_n=15
	-> {"results": [MovieSummary...], "count": n}
	-> {"error": "...", "message": "..."} when ranking fails

	GET <base>/
	-> {"message": "...", "version": "...", "endpoints": {...}}

Decoding Rules:

  - Any body that parses as JSON is a successful response, whatever the HTTP status.
  - A missing or malformed "results" field decodes to an empty, non-nil slice.
  - Result elements that are not objects are skipped and logged.
  - A body that is not JSON is a *DecodeError (2xx) or *StatusError (non-2xx).

Resilience:

  - Every request carries a deadline (recommend.timeout).
  - Requests are paced by a token bucket (golang.org/x/time/rate).
  - A circuit breaker (sony/gobreaker) fails fast with ErrCircuitOpen while the
    service keeps failing. Caller cancellations do not count as failures.
  - No automatic retries: a failed request stays failed until the next query.

Thread Safety:

Client is safe for concurrent use.
*/
package recommend

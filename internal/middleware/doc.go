// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package middleware provides HTTP middleware for the view server.

All middleware has the chi signature func(http.Handler) http.Handler and is
installed with r.Use:

  - RequestID: X-Request-ID propagation (UUID v4 when absent or unusable),
    stored in the context for logging.Ctx
  - PrometheusMetrics: request totals, latency and in-flight gauge, labeled by
    chi route pattern
  - Compression: gzip for clients that accept it

Stack used by internal/web:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(...))
	r.Use(httprate.LimitByIP(...))
	r.Use(middleware.Compression)
*/
package middleware

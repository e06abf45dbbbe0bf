// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package web serves the recommendation page as server-rendered HTML.

Every request to "/" builds a fresh page.Page from the mood and genre query
parameters, runs the recommendation request synchronously and renders the
result with html/template. The same view is available as JSON under
/api/v1/view for scripted clients.

# Routes

	GET /             HTML page (?mood=...&genre=...)
	GET /api/v1/view  JSON view model in the standard APIResponse envelope
	GET /healthz      liveness plus the last recommendation service probe
	GET /metrics      Prometheus metrics

# Middleware

The global stack, in order: request ID, chi RealIP, chi Recoverer, HTTP
metrics, go-chi/cors, go-chi/httprate (per client IP, unless disabled) and
gzip compression (all routes except /metrics).

Posters that fail to load in the browser fall back to the card placeholder
through an onerror handler. Overview and title clamping is done with CSS
line-clamp.
*/
package web

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package metrics provides Prometheus metrics for the recommendation client and view server.

# Metrics Endpoint

The view server exposes metrics at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

The terminal client registers the same collectors but does not serve them.

# Available Metrics

Recommendation Client:
  - moodflix_recommend_requests_total: Requests by outcome (success, failure, rejected)
  - moodflix_recommend_request_duration_seconds: Request latency (histogram)
  - moodflix_recommend_results_returned: Results per successful response (histogram)

Query Lifecycle:
  - moodflix_query_settles_total: Settled queries, applied or discarded as stale

Posters:
  - moodflix_poster_rewrites_total: Resolver rule hits (labels: rule)
  - moodflix_poster_probes_total: Image probes (ok, failed, cached)

Upstream:
  - moodflix_upstream_up: 1 when the last health probe succeeded
  - moodflix_upstream_probes_total: Health probes by result (up, down)

Circuit Breaker:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result
  - circuit_breaker_state_transitions_total: State changes

HTTP:
  - api_requests_total, api_request_duration_seconds, api_active_requests

# Usage

	start := time.Now()
	results, err := fetch(ctx)
	metrics.RecordRecommendRequest(time.Since(start), len(results), err)
*/
package metrics

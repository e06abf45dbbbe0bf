// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Recommendation requests (latency, outcomes)
// - Query settles (applied vs. discarded as stale)
// - Poster URL rewrites and image probes
// - Circuit breaker state
// - HTTP view server endpoints

var (
	// Recommendation Client Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "success", "failure", "rejected"
	)

	RecommendRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodflix_recommend_request_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // Ranking service cold starts can take seconds
		},
	)

	RecommendResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodflix_recommend_results_returned",
			Help:    "Number of results decoded per successful recommendation response",
			Buckets: []float64{0, 1, 3, 6, 9, 12, 15},
		},
	)

	// Query Lifecycle Metrics
	QuerySettlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_query_settles_total",
			Help: "Total number of settled queries by result",
		},
		[]string{"result"}, // "applied", "stale"
	)

	// Poster Metrics
	PosterRewritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_poster_rewrites_total",
			Help: "Total number of poster references resolved, by matching rule",
		},
		[]string{"rule"},
	)

	PosterProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_poster_probes_total",
			Help: "Total number of poster image probes by result",
		},
		[]string{"result"}, // "ok", "failed", "cached"
	)

	// Upstream Health Metrics
	UpstreamUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodflix_upstream_up",
			Help: "Whether the last recommendation service health probe succeeded (1) or failed (0)",
		},
	)

	UpstreamProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodflix_upstream_probes_total",
			Help: "Total number of recommendation service health probes by result",
		},
		[]string{"result"}, // "up", "down"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Rendering waits on the upstream request
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordRecommendRequest records the outcome and latency of one recommendation request.
// The results count is only observed for successful requests.
func RecordRecommendRequest(duration time.Duration, results int, err error) {
	RecommendRequestDuration.Observe(duration.Seconds())
	if err != nil {
		RecommendRequestsTotal.WithLabelValues("failure").Inc()
		return
	}
	RecommendRequestsTotal.WithLabelValues("success").Inc()
	RecommendResultsReturned.Observe(float64(results))
}

// RecordRecommendRejected records a request refused before reaching the network
// (open circuit breaker or invalid parameters).
func RecordRecommendRejected() {
	RecommendRequestsTotal.WithLabelValues("rejected").Inc()
}

// RecordQuerySettle records whether a settled query was applied or discarded as stale.
func RecordQuerySettle(applied bool) {
	if applied {
		QuerySettlesTotal.WithLabelValues("applied").Inc()
		return
	}
	QuerySettlesTotal.WithLabelValues("stale").Inc()
}

// RecordPosterRewrite records which resolver rule handled a poster reference.
func RecordPosterRewrite(rule string) {
	PosterRewritesTotal.WithLabelValues(rule).Inc()
}

// RecordPosterProbe records an image probe result: "ok", "failed" or "cached".
func RecordPosterProbe(result string) {
	PosterProbesTotal.WithLabelValues(result).Inc()
}

// RecordUpstreamProbe records one health probe of the recommendation service.
func RecordUpstreamProbe(up bool) {
	if up {
		UpstreamUp.Set(1)
		UpstreamProbesTotal.WithLabelValues("up").Inc()
		return
	}
	UpstreamUp.Set(0)
	UpstreamProbesTotal.WithLabelValues("down").Inc()
}

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

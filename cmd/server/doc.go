// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package main is the entry point for the MoodFlix view server.
//
// The server renders the recommendation page as HTML for browsers. Each request
// to "/" carries the mood and genre as query parameters and is answered after a
// single call to the recommendation service.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog on stderr
//  3. Recommendation client: rate limited, behind a circuit breaker
//  4. Supervisor tree: upstream health monitor and HTTP server (suture v4)
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
// in-flight requests for up to server.shutdown_timeout.
//
// # Example Usage
//
//	export ENVIRONMENT=development
//	export HTTP_PORT=3000
//	./moodflix-server
//
// Point at a specific service:
//
//	export RECOMMEND_BASE_URL=https://recommender.example.com
//	./moodflix-server
package main

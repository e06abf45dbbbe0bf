// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package models

import (
	"time"
)

// APIResponse is the envelope of every JSON endpoint of the view server.
//
// Status is "success" (see Data) or "error" (see Error).
//
//	{
//	  "status": "success",
//	  "data": {"heading": "Recommended for You", "phase": "results", ...},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "duration_ms": 412, "request_id": "..."}
//	}
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "Invalid request parameters", "details": {"genre": "..."}},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
//   - DurationMS: time spent waiting on the recommendation service (0 when no request was made)
//   - RequestID: the X-Request-ID of the request
type Metadata struct {
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
}

// APIError is a structured error payload.
//
// Codes:
//   - VALIDATION_ERROR: invalid mood or genre
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: rendering or encoding failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes carried in APIError.Code.
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

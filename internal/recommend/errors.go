// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"errors"
	"fmt"
)

// ErrCircuitOpen is returned without contacting the service while the circuit breaker is open.
var ErrCircuitOpen = errors.New("recommendation service unavailable: circuit breaker open")

// StatusError is returned when the service answers with a non-2xx status and a non-JSON body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recommendation service returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError struct {
	// Snippet is the start of the offending body, for diagnostics.
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode recommendation response: %v (body: %q)", e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

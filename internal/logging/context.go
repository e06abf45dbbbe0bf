// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// requestIDKey is the context key for HTTP request IDs.
	requestIDKey contextKey = "request_id"

	// querySeqKey is the context key for the recommendation query sequence number.
	querySeqKey contextKey = "query_seq"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context with the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithQuerySeq tags ctx with the sequence number of the query it serves.
//
//	ctx = logging.ContextWithQuerySeq(ctx, ticket.Seq)
func ContextWithQuerySeq(ctx context.Context, seq uint64) context.Context {
	return context.WithValue(ctx, querySeqKey, seq)
}

// QuerySeqFromContext retrieves the query sequence number from context.
func QuerySeqFromContext(ctx context.Context) (uint64, bool) {
	seq, ok := ctx.Value(querySeqKey).(uint64)
	return seq, ok
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context.
// Returns the global logger if no logger is stored in context.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with context values (request_id, query_seq) added.
//
//	logging.Ctx(ctx).Info().Msg("Rendering page")
//	// Output: {"level":"info","request_id":"uuid","query_seq":3,"message":"Rendering page"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := LoggerFromContext(ctx).With()

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	if seq, ok := QuerySeqFromContext(ctx); ok {
		logCtx = logCtx.Uint64("query_seq", seq)
	}

	logger := logCtx.Logger()
	return &logger
}

// WithComponent creates a child logger with a component field.
//
//	tuiLogger := logging.WithComponent("tui")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package web

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/middleware"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/page"
	"github.com/tomtom215/moodflix/internal/query"
	"github.com/tomtom215/moodflix/internal/supervisor/services"
	"github.com/tomtom215/moodflix/internal/validation"
)

// viewRequest holds the query parameters of a page request.
type viewRequest struct {
	Mood  string `json:"mood" validate:"max=200"`
	Genre string `json:"genre" validate:"required,genre"`
}

// parseViewRequest reads mood and genre from the query string.
// A missing genre means All.
func parseViewRequest(r *http.Request) (viewRequest, *models.APIError) {
	q := r.URL.Query()
	req := viewRequest{
		Mood:  q.Get("mood"),
		Genre: strings.TrimSpace(q.Get("genre")),
	}
	if req.Genre == "" {
		req.Genre = models.GenreAll
	}

	verr := validation.ValidateStruct(&req)
	if verr == nil {
		return req, nil
	}
	details := make(map[string]interface{}, len(verr.Errors()))
	for _, fe := range verr.Errors() {
		details[fe.Field()] = fe.Error()
	}
	return req, &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: "Invalid request parameters",
		Details: details,
	}
}

// render builds a page for req and settles it with one synchronous request.
// The returned duration is the time spent waiting on the recommendation service.
func (s *Server) render(ctx context.Context, req viewRequest) (View, time.Duration) {
	p := page.New(s.opts.Page)
	ticket, ok, err := p.Set(req.Mood, req.Genre)
	if err != nil || !ok {
		return viewOf(p), 0
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	outcome := query.Execute(ctx, s.opts.Fetcher, ticket)
	elapsed := time.Since(start)
	p.Settle(outcome)

	logging.Ctx(ctx).Debug().
		Str("genre", req.Genre).
		Int("results", len(outcome.Results)).
		Str("phase", p.Phase().String()).
		Dur("elapsed", elapsed).
		Msg("Rendered recommendation page")

	return viewOf(p), elapsed
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseViewRequest(r)
	if apiErr != nil {
		http.Error(w, apiErr.Message+": "+detailSummary(apiErr), http.StatusBadRequest)
		return
	}

	view, _ := s.render(r.Context(), req)
	data := pageData{
		View:      view,
		Brand:     page.Brand,
		Hero:      page.Hero,
		Prompt:    page.Prompt,
		InputHint: page.InputHint,
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseViewRequest(r)
	if apiErr != nil {
		writeError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	view, elapsed := s.render(r.Context(), req)
	writeJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   view,
		Metadata: models.Metadata{
			Timestamp:  time.Now().UTC(),
			DurationMS: elapsed.Milliseconds(),
			RequestID:  middleware.GetRequestID(r.Context()),
		},
	})
}

// healthData is the /healthz payload.
type healthData struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version,omitempty"`
	Upstream *services.UpstreamStatus `json:"upstream,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	data := healthData{Status: "ok", Version: s.opts.Version}
	if s.opts.Health != nil {
		if st, ok := s.opts.Health.Status(); ok {
			data.Upstream = &st
			if !st.Up {
				data.Status = "degraded"
			}
		}
	}

	writeJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, resp *models.APIResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	logging.Ctx(r.Context()).Warn().
		Str("code", apiErr.Code).
		Int("status", status).
		Msg(apiErr.Message)

	writeJSON(w, r, status, &models.APIResponse{
		Status: models.StatusError,
		Error:  apiErr,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}

// detailSummary joins validation details for plain-text errors.
func detailSummary(apiErr *models.APIError) string {
	parts := make([]string, 0, len(apiErr.Details))
	for _, v := range apiErr.Details {
		if s, ok := v.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

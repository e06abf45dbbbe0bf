// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/moodflix/internal/middleware"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/page"
	"github.com/tomtom215/moodflix/internal/query"
	"github.com/tomtom215/moodflix/internal/supervisor/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// HealthReporter exposes the latest recommendation service probe.
// *services.UpstreamMonitor implements it.
type HealthReporter interface {
	Status() (services.UpstreamStatus, bool)
}

// Options configures a Server.
type Options struct {
	// Fetcher runs recommendation requests. Required.
	Fetcher query.Fetcher

	// Page configures poster resolution and grid sizing of every rendered page.
	Page page.Options

	// Health is optional; without it /healthz reports liveness only.
	Health HealthReporter

	// Version is reported by /healthz.
	Version string

	// RequestTimeout bounds the recommendation request of one page. Default: 15s
	RequestTimeout time.Duration

	CORSOrigins       []string
	RateLimitReqs     int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// Server renders recommendation pages over HTTP.
type Server struct {
	opts Options
	tmpl *template.Template
}

// New parses the page template and returns a Server.
func New(opts Options) (*Server, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("web: fetcher is required")
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 15 * time.Second
	}
	if opts.RateLimitReqs <= 0 {
		opts.RateLimitReqs = 100
	}
	if opts.RateLimitWindow <= 0 {
		opts.RateLimitWindow = time.Minute
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{opts: opts, tmpl: tmpl}, nil
}

// Router builds the chi router with the global middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	}))
	r.Use(s.rateLimit())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compression)
		r.Get("/", s.handleIndex)
		r.Get("/api/v1/view", s.handleView)
		r.Get("/healthz", s.handleHealth)
	})

	// promhttp negotiates its own compression.
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) rateLimit() func(http.Handler) http.Handler {
	if s.opts.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		s.opts.RateLimitReqs,
		s.opts.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, http.StatusTooManyRequests, &models.APIError{
				Code:    models.ErrCodeRateLimitExceeded,
				Message: "Too many requests, slow down",
			})
		}),
	)
}

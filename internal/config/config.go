// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Environment names accepted by app.environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds all application configuration.
// Loaded by LoadWithKoanf from defaults, an optional YAML file and environment variables.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Recommend RecommendConfig `koanf:"recommend"`
	Poster    PosterConfig    `koanf:"poster"`
	TUI       TUIConfig       `koanf:"tui"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// AppConfig holds deployment-wide settings.
type AppConfig struct {
	// Environment is the deployment context: development, staging or production.
	// It selects the recommendation service base URL once at startup.
	Environment string `koanf:"environment"`
}

// RecommendConfig configures the recommendation service client.
type RecommendConfig struct {
	// BaseURL overrides environment-based selection when set.
	BaseURL string `koanf:"base_url"`

	// ProductionURL is used when app.environment is production.
	ProductionURL string `koanf:"production_url"`

	// DevelopmentURL is the loopback service used in every other environment.
	DevelopmentURL string `koanf:"development_url"`

	// Timeout bounds a single recommendation request. Expiry is a failure.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the sustained request rate per second; RateBurst the bucket size.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker guarding the recommendation service.
type BreakerConfig struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`
	// Interval is the window over which failures are counted while closed.
	Interval time.Duration `koanf:"interval"`
	// Timeout is how long the breaker stays open.
	Timeout time.Duration `koanf:"timeout"`
	// MinRequests is the minimum sample size before the failure ratio is considered.
	MinRequests uint32 `koanf:"min_requests"`
	// FailureRatio trips the breaker when reached.
	FailureRatio float64 `koanf:"failure_ratio"`
}

// EffectiveBaseURL returns the recommendation service base URL for environment,
// without a trailing slash.
func (r RecommendConfig) EffectiveBaseURL(environment string) string {
	base := r.DevelopmentURL
	switch {
	case r.BaseURL != "":
		base = r.BaseURL
	case environment == EnvProduction:
		base = r.ProductionURL
	}
	return strings.TrimRight(base, "/")
}

// PosterConfig configures poster display and image probing.
type PosterConfig struct {
	// GridTier is the minimum IMDb width token requested for primary grid cards.
	GridTier int `koanf:"grid_tier"`

	// ProbeEnabled turns on HEAD probing of poster URLs in the terminal client.
	ProbeEnabled  bool          `koanf:"probe_enabled"`
	ProbeTimeout  time.Duration `koanf:"probe_timeout"`
	ProbeCacheTTL time.Duration `koanf:"probe_cache_ttl"`
	ProbeRate     float64       `koanf:"probe_rate"`
	ProbeBurst    int           `koanf:"probe_burst"`
}

// TUIConfig configures the terminal client.
type TUIConfig struct {
	// Debounce is the quiet period after the last mood keystroke before a query
	// is triggered. Zero triggers on every change.
	Debounce time.Duration `koanf:"debounce"`

	// AltScreen runs the client in the terminal's alternate screen buffer.
	AltScreen bool `koanf:"alt_screen"`
}

// ServerConfig configures the HTML view server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig configures the global zerolog logger.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`

	// File is where the terminal client writes its logs.
	// The server always logs to stderr.
	File string `koanf:"file"`
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// BaseURL returns the recommendation service base URL for the configured environment.
func (c *Config) BaseURL() string {
	return c.Recommend.EffectiveBaseURL(c.App.Environment)
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"fmt"
	"time"
)

// Grid tier bounds. Tiers below the resolver baseline are accepted; the grid
// override never lowers a resolved poster.
const (
	minGridTier = 100
	maxGridTier = 4000
)

// Validate checks that configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateApp(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validatePoster(); err != nil {
		return err
	}

	if err := c.validateTUI(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed deployment environments
var validEnvironments = map[string]bool{
	EnvDevelopment: true,
	EnvStaging:     true,
	EnvProduction:  true,
}

// validateApp validates the deployment environment
func (c *Config) validateApp() error {
	if !validEnvironments[c.App.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateRecommend validates the recommendation client configuration
func (c *Config) validateRecommend() error {
	urls := []struct {
		value string
		name  string
	}{
		{c.Recommend.BaseURL, "RECOMMEND_BASE_URL"},
		{c.Recommend.ProductionURL, "RECOMMEND_PRODUCTION_URL"},
		{c.Recommend.DevelopmentURL, "RECOMMEND_DEVELOPMENT_URL"},
	}
	for _, u := range urls {
		if u.value == "" {
			if u.name == "RECOMMEND_BASE_URL" {
				continue
			}
			return fmt.Errorf("%s is required", u.name)
		}
		if err := validateHTTPURL(u.value, u.name); err != nil {
			return fmt.Errorf("%s is invalid: %w", u.name, err)
		}
	}

	if c.Recommend.Timeout <= 0 {
		return fmt.Errorf("RECOMMEND_TIMEOUT must be positive")
	}
	if c.Recommend.RateLimit <= 0 {
		return fmt.Errorf("RECOMMEND_RATE_LIMIT must be positive")
	}
	if c.Recommend.RateBurst < 1 {
		return fmt.Errorf("RECOMMEND_RATE_BURST must be at least 1")
	}
	return c.validateBreaker()
}

// validateBreaker validates circuit breaker thresholds
func (c *Config) validateBreaker() error {
	b := c.Recommend.Breaker
	if b.MaxRequests < 1 {
		return fmt.Errorf("BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Interval <= 0 || b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_INTERVAL and BREAKER_TIMEOUT must be positive")
	}
	if b.MinRequests < 1 {
		return fmt.Errorf("BREAKER_MIN_REQUESTS must be at least 1")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// validatePoster validates poster display and probing configuration
func (c *Config) validatePoster() error {
	if c.Poster.GridTier < minGridTier || c.Poster.GridTier > maxGridTier {
		return fmt.Errorf("POSTER_GRID_TIER must be between %d and %d", minGridTier, maxGridTier)
	}
	if !c.Poster.ProbeEnabled {
		return nil
	}
	if c.Poster.ProbeTimeout <= 0 || c.Poster.ProbeCacheTTL <= 0 {
		return fmt.Errorf("POSTER_PROBE_TIMEOUT and POSTER_PROBE_CACHE_TTL must be positive")
	}
	if c.Poster.ProbeRate <= 0 || c.Poster.ProbeBurst < 1 {
		return fmt.Errorf("POSTER_PROBE_RATE must be positive and POSTER_PROBE_BURST at least 1")
	}
	return nil
}

// validateTUI validates terminal client configuration
func (c *Config) validateTUI() error {
	if c.TUI.Debounce < 0 {
		return fmt.Errorf("TUI_DEBOUNCE must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < minRateLimitRequests || c.Server.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Server.RateLimitWindow < minRateLimitWindow || c.Server.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin may call the JSON view endpoint.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

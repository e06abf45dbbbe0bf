// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodflix/config.yaml",
	"/etc/moodflix/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Recommendation service endpoints.
const (
	DefaultProductionURL  = "https://moodflix-backend.onrender.com"
	DefaultDevelopmentURL = "http://localhost:8000"
)

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: EnvDevelopment,
		},
		Recommend: RecommendConfig{
			BaseURL:        "",
			ProductionURL:  DefaultProductionURL,
			DevelopmentURL: DefaultDevelopmentURL,
			Timeout:        10 * time.Second,
			RateLimit:      5,
			RateBurst:      5,
			Breaker: BreakerConfig{
				MaxRequests:  1,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  5,
				FailureRatio: 0.6,
			},
		},
		Poster: PosterConfig{
			GridTier:      800,
			ProbeEnabled:  true,
			ProbeTimeout:  5 * time.Second,
			ProbeCacheTTL: 30 * time.Minute,
			ProbeRate:     10,
			ProbeBurst:    5,
		},
		TUI: TUIConfig{
			Debounce:  300 * time.Millisecond,
			AltScreen: true,
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              3000,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
			File:   "moodflix.log",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	return load(findConfigFile())
}

// load runs the layered load with an explicit config file path ("" for none).
func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf config paths.
var envMappings = map[string]string{
	"environment": "app.environment",

	// Recommendation service
	"recommend_base_url":        "recommend.base_url",
	"recommend_production_url":  "recommend.production_url",
	"recommend_development_url": "recommend.development_url",
	"recommend_timeout":         "recommend.timeout",
	"recommend_rate_limit":      "recommend.rate_limit",
	"recommend_rate_burst":      "recommend.rate_burst",
	"breaker_max_requests":      "recommend.breaker.max_requests",
	"breaker_interval":          "recommend.breaker.interval",
	"breaker_timeout":           "recommend.breaker.timeout",
	"breaker_min_requests":      "recommend.breaker.min_requests",
	"breaker_failure_ratio":     "recommend.breaker.failure_ratio",

	// Posters
	"poster_grid_tier":       "poster.grid_tier",
	"poster_probe_enabled":   "poster.probe_enabled",
	"poster_probe_timeout":   "poster.probe_timeout",
	"poster_probe_cache_ttl": "poster.probe_cache_ttl",
	"poster_probe_rate":      "poster.probe_rate",
	"poster_probe_burst":     "poster.probe_burst",

	// Terminal client
	"tui_debounce":   "tui.debounce",
	"tui_alt_screen": "tui.alt_screen",

	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",
	"cors_origins":          "server.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
	"log_file":   "logging.file",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - ENVIRONMENT -> app.environment
//   - RECOMMEND_TIMEOUT -> recommend.timeout
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

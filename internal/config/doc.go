// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package config loads and validates MoodFlix configuration.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, config.yaml, config.yml, /etc/moodflix/config.yaml
 3. Environment variables, through an explicit name mapping; unknown variables are ignored

Example YAML:

	app:
	  environment: production
	recommend:
	  timeout: 10s
	poster:
	  grid_tier: 1200
	tui:
	  debounce: 250ms

Key environment variables:

	ENVIRONMENT          development (default), staging, production
	RECOMMEND_BASE_URL   explicit service URL, overrides environment selection
	RECOMMEND_TIMEOUT    per-request deadline (default 10s)
	POSTER_GRID_TIER     primary grid IMDb width tier (default 800)
	TUI_DEBOUNCE         mood input debounce (default 300ms)
	HTTP_PORT            view server port (default 3000)
	LOG_LEVEL, LOG_FORMAT, LOG_FILE

The recommendation service base URL is resolved once with Config.BaseURL and
injected into the client; it is never re-read at runtime.
*/
package config

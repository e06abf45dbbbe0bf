// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
)

// Pinger probes the recommendation service. *recommend.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) (*models.ServiceInfo, error)
}

// UpstreamStatus is the outcome of the latest health probe.
type UpstreamStatus struct {
	Up        bool      `json:"up"`
	Version   string    `json:"version,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// UpstreamMonitorConfig controls health probing.
type UpstreamMonitorConfig struct {
	// Interval between probes. Default: 1m
	Interval time.Duration
	// Timeout bounds a single probe. Default: 10s
	Timeout time.Duration
}

// UpstreamMonitor periodically probes the recommendation service and keeps the
// latest outcome for the health endpoint. Probe failures are logged, never returned,
// so the supervisor only restarts the monitor on panics.
type UpstreamMonitor struct {
	pinger Pinger
	config UpstreamMonitorConfig
	logger zerolog.Logger
	name   string

	mu     sync.RWMutex
	status UpstreamStatus
	probed bool
}

// NewUpstreamMonitor creates a monitor for pinger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewUpstreamMonitor(pinger Pinger, cfg UpstreamMonitorConfig, logger zerolog.Logger) *UpstreamMonitor {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &UpstreamMonitor{
		pinger: pinger,
		config: cfg,
		logger: logger.With().Str("service", "upstream-monitor").Logger(),
		name:   "upstream-monitor",
	}
}

// Serve implements suture.Service. It probes once immediately and then on every tick.
func (m *UpstreamMonitor) Serve(ctx context.Context) error {
	m.logger.Info().Dur("interval", m.config.Interval).Msg("upstream monitor starting")

	m.Probe(ctx)

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("upstream monitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

// Probe runs one health probe and records its outcome.
func (m *UpstreamMonitor) Probe(ctx context.Context) UpstreamStatus {
	probeCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	info, err := m.pinger.Ping(probeCtx)
	status := UpstreamStatus{Up: err == nil, CheckedAt: time.Now()}
	if err != nil {
		status.Error = err.Error()
	} else if info != nil {
		status.Version = info.Version
	}

	m.mu.Lock()
	wasUp, probed := m.status.Up, m.probed
	m.status = status
	m.probed = true
	m.mu.Unlock()

	metrics.RecordUpstreamProbe(status.Up)

	switch {
	case !status.Up && (wasUp || !probed):
		m.logger.Warn().Err(err).Msg("recommendation service unreachable")
	case status.Up && !wasUp:
		m.logger.Info().Str("version", status.Version).Msg("recommendation service reachable")
	}
	return status
}

// Status returns the latest probe outcome. The boolean is false before the first probe.
func (m *UpstreamMonitor) Status() (UpstreamStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status, m.probed
}

// String identifies the service in supervisor events.
func (m *UpstreamMonitor) String() string {
	return m.name
}

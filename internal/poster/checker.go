// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package poster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/moodflix/internal/cache"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
)

// CheckerConfig controls image probing.
type CheckerConfig struct {
	// Timeout bounds a single probe.
	Timeout time.Duration
	// CacheTTL is how long a probe outcome is reused for the same URL.
	CacheTTL time.Duration
	// RatePerSecond and Burst pace outgoing probes.
	RatePerSecond float64
	Burst         int
	// UserAgent is sent with every probe.
	UserAgent string
}

// DefaultCheckerConfig returns the probe settings used when none are configured.
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{
		Timeout:       5 * time.Second,
		CacheTTL:      30 * time.Minute,
		RatePerSecond: 10,
		Burst:         5,
		UserAgent:     "MoodFlix/1.0",
	}
}

// Checker detects poster images that would fail to load.
//
// A probe fails on a transport error, a non-2xx status, or a Content-Type that is
// present but not image/*. Outcomes are cached per URL. Checker is safe for
// concurrent use; call Close to release the cache.
type Checker struct {
	client    *http.Client
	limiter   *rate.Limiter
	outcomes  *cache.Cache[bool]
	timeout   time.Duration
	userAgent string
}

// NewChecker creates a checker. A nil client uses a client with no overall timeout;
// each probe is bounded by cfg.Timeout instead.
func NewChecker(cfg CheckerConfig, client *http.Client) *Checker {
	defaults := DefaultCheckerConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = defaults.RatePerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if client == nil {
		client = &http.Client{}
	}

	return &Checker{
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		outcomes:  cache.New[bool](cfg.CacheTTL),
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
	}
}

// Check reports whether the image at url is expected to load.
//
// An empty url never loads. When ctx ends before the probe could run, Check
// reports true and caches nothing: the image is assumed fine until proven otherwise.
func (c *Checker) Check(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}
	if ok, found := c.outcomes.Get(url); found {
		metrics.RecordPosterProbe("cached")
		return ok
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return true
	}

	err := c.probe(ctx, url)
	if err != nil && ctx.Err() != nil {
		return true
	}

	ok := err == nil
	c.outcomes.Set(url, ok)
	if ok {
		metrics.RecordPosterProbe("ok")
	} else {
		metrics.RecordPosterProbe("failed")
		logging.Debug().Err(err).Str("url", url).Msg("Poster image unavailable")
	}
	return ok
}

// Close releases the outcome cache.
func (c *Checker) Close() {
	c.outcomes.Stop()
}

// probe issues a HEAD request, falling back to a one-byte ranged GET for hosts
// that do not implement HEAD.
func (c *Checker) probe(ctx context.Context, url string) error {
	status, contentType, err := c.do(ctx, http.MethodHead, url)
	if err != nil {
		return err
	}
	if status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented {
		status, contentType, err = c.do(ctx, http.MethodGet, url)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return fmt.Errorf("unexpected status %d", status)
	}
	if contentType != "" && !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return fmt.Errorf("unexpected content type %q", contentType)
	}
	return nil
}

func (c *Checker) do(ctx context.Context, method, url string) (int, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	//nolint:errcheck // draining for connection reuse
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, resp.Header.Get("Content-Type"), nil
}

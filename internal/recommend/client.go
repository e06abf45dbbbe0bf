// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/metrics"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/validation"
)

const (
	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 1 << 20 // 1MB

	// maxErrorBodySize limits the body excerpt carried by errors.
	maxErrorBodySize = 512

	userAgent = "MoodFlix/1.0"
)

// response is the decoded payload passed through the circuit breaker.
type response struct {
	movies []models.MovieSummary
}

// Client talks to the recommendation service.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[*response]
}

// NewClient creates a client for the service at baseURL.
// baseURL is resolved once at startup (config.Config.BaseURL) and never changes.
// A nil httpClient uses a default client; requests are bounded by cfg.Timeout.
func NewClient(baseURL string, cfg config.RecommendConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		cb:      newBreaker(cfg.Breaker),
	}
}

// BaseURL returns the service base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Recommend fetches the ranked results for params, in service order.
//
// The returned slice is never nil on success. Errors are *validation.RequestValidationError
// for invalid parameters, ErrCircuitOpen, *StatusError, *DecodeError, or a wrapped
// transport or context error.
func (c *Client) Recommend(ctx context.Context, params models.QueryParameters) ([]models.MovieSummary, error) {
	if err := validation.ValidateQuery(params); err != nil {
		metrics.RecordRecommendRejected()
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	start := time.Now()
	resp, err := c.execute(func() (*response, error) {
		return c.fetchRecommendations(ctx, params)
	})
	if errors.Is(err, ErrCircuitOpen) {
		metrics.RecordRecommendRejected()
		return nil, err
	}

	results := 0
	if resp != nil {
		results = len(resp.movies)
	}
	metrics.RecordRecommendRequest(time.Since(start), results, err)
	if err != nil {
		return nil, err
	}
	return resp.movies, nil
}

// Ping fetches the service banner from GET <base>/.
// It bypasses the circuit breaker so failed health checks never block queries.
func (c *Client) Ping(ctx context.Context) (*models.ServiceInfo, error) {
	body, status, err := c.get(ctx, c.baseURL+"/")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &StatusError{StatusCode: status, Body: excerpt(body)}
	}
	var info models.ServiceInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, &DecodeError{Snippet: excerpt(body), Err: err}
	}
	return &info, nil
}

// buildURL constructs the recommendation request URL.
// The genre is sent verbatim, including the "All" sentinel.
func (c *Client) buildURL(params models.QueryParameters) string {
	q := url.Values{}
	q.Set("mood", params.Mood)
	q.Set("genre", params.Genre)
	q.Set("top_n", strconv.Itoa(params.TopN))
	return c.baseURL + "/recommend?" + q.Encode()
}

func (c *Client) fetchRecommendations(ctx context.Context, params models.QueryParameters) (*response, error) {
	body, status, err := c.get(ctx, c.buildURL(params))
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		if status < 200 || status >= 300 {
			return nil, &StatusError{StatusCode: status, Body: excerpt(body)}
		}
		return nil, &DecodeError{Snippet: excerpt(body), Err: fmt.Errorf("invalid JSON")}
	}

	movies := decodeResults(ctx, body)
	return &response{movies: movies}, nil
}

// get issues a GET bounded by the client timeout and returns the (size-capped) body.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response failed: %w", err)
	}
	return body, resp.StatusCode, nil
}

// decodeResults extracts the ordered result list from a JSON body.
// It never fails: absent or malformed results yield an empty slice.
func decodeResults(ctx context.Context, body []byte) []models.MovieSummary {
	log := logging.Ctx(ctx)
	movies := []models.MovieSummary{}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Warn().Err(err).Msg("Recommendation response is not an object, treating as no results")
		return movies
	}

	if raw, ok := envelope["error"]; ok {
		var serviceErr, message string
		_ = json.Unmarshal(raw, &serviceErr)
		if rawMsg, ok := envelope["message"]; ok {
			_ = json.Unmarshal(rawMsg, &message)
		}
		log.Warn().Str("service_error", serviceErr).Str("service_message", message).Msg("Recommendation service reported an error")
	}

	raw, ok := envelope["results"]
	if !ok {
		return movies
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		log.Warn().Err(err).Msg("Recommendation results field is not an array, treating as no results")
		return movies
	}

	for i, element := range elements {
		var movie models.MovieSummary
		if err := json.Unmarshal(element, &movie); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Skipping malformed recommendation result")
			continue
		}
		movies = append(movies, movie)
	}

	if rawCount, ok := envelope["count"]; ok {
		var count interface{}
		if err := json.Unmarshal(rawCount, &count); err == nil {
			if n, err := cast.ToIntE(count); err == nil && n != len(movies) {
				log.Debug().Int("count", n).Int("decoded", len(movies)).Msg("Recommendation count differs from decoded results")
			}
		}
	}

	return movies
}

// excerpt returns the start of body for error messages.
func excerpt(body []byte) string {
	if len(body) > maxErrorBodySize {
		return string(body[:maxErrorBodySize]) + "... (truncated)"
	}
	return string(body)
}

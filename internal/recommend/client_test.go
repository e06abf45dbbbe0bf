// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package recommend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/moodflix/internal/config"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/validation"
)

// testConfig returns a client configuration that never throttles tests.
func testConfig() config.RecommendConfig {
	return config.RecommendConfig{
		Timeout:   2 * time.Second,
		RateLimit: 1000,
		RateBurst: 100,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  5,
			FailureRatio: 0.6,
		},
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL+"/", testConfig(), server.Client())
}

func TestRecommend_RequestShape(t *testing.T) {
	t.Parallel()

	var gotPath, gotMood, gotGenre, gotTopN, gotAccept string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMood = r.URL.Query().Get("mood")
		gotGenre = r.URL.Query().Get("genre")
		gotTopN = r.URL.Query().Get("top_n")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"results": [], "count": 0}`)
	})

	if _, err := client.Recommend(context.Background(), models.NewQueryParameters("cozy & calm", models.GenreAll)); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if gotPath != "/recommend" {
		t.Errorf("path = %q, want /recommend", gotPath)
	}
	if gotMood != "cozy & calm" {
		t.Errorf("mood = %q, want %q", gotMood, "cozy & calm")
	}
	if gotGenre != "All" {
		t.Errorf("genre = %q, want literal All", gotGenre)
	}
	if gotTopN != "15" {
		t.Errorf("top_n = %q, want 15", gotTopN)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestRecommend_Decoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantTitles []string
	}{
		{
			name:       "ordered results",
			status:     http.StatusOK,
			body:       `{"results":[{"title":"B","year":1999},{"title":"A","year":2001},{"title":"C"}],"count":3}`,
			wantTitles: []string{"B", "A", "C"},
		},
		{
			name:       "empty results",
			status:     http.StatusOK,
			body:       `{"results": []}`,
			wantTitles: []string{},
		},
		{
			name:       "results absent",
			status:     http.StatusOK,
			body:       `{"count": 0}`,
			wantTitles: []string{},
		},
		{
			name:       "results not an array",
			status:     http.StatusOK,
			body:       `{"results": "oops"}`,
			wantTitles: []string{},
		},
		{
			name:       "results null",
			status:     http.StatusOK,
			body:       `{"results": null}`,
			wantTitles: []string{},
		},
		{
			name:       "top-level array",
			status:     http.StatusOK,
			body:       `[{"title":"A"}]`,
			wantTitles: []string{},
		},
		{
			name:       "service error envelope",
			status:     http.StatusOK,
			body:       `{"error":"Recommendation failed","message":"model not loaded"}`,
			wantTitles: []string{},
		},
		{
			name:       "non-object elements skipped",
			status:     http.StatusOK,
			body:       `{"results":[{"title":"A"},42,"x",{"title":"B"}]}`,
			wantTitles: []string{"A", "B"},
		},
		{
			name:       "count mismatch ignored",
			status:     http.StatusOK,
			body:       `{"results":[{"title":"A"}],"count":"7"}`,
			wantTitles: []string{"A"},
		},
		{
			name:       "json detail on server error",
			status:     http.StatusInternalServerError,
			body:       `{"detail":"boom"}`,
			wantTitles: []string{},
		},
		{
			name:       "json body on error status",
			status:     http.StatusInternalServerError,
			body:       `{"error":"boom"}`,
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			movies, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", "Drama"))
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if movies == nil {
				t.Fatal("Recommend() returned nil slice, want non-nil")
			}
			if len(movies) != len(tt.wantTitles) {
				t.Fatalf("got %d movies, want %d", len(movies), len(tt.wantTitles))
			}
			for i, want := range tt.wantTitles {
				if movies[i].Title != want {
					t.Errorf("movies[%d].Title = %q, want %q", i, movies[i].Title, want)
				}
			}
		})
	}
}

func TestRecommend_Failures(t *testing.T) {
	t.Parallel()

	t.Run("non-JSON success body", func(t *testing.T) {
		t.Parallel()
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>gateway</html>")
		})

		_, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", models.GenreAll))
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("Recommend() error = %v, want *DecodeError", err)
		}
		if !strings.Contains(decodeErr.Snippet, "gateway") {
			t.Errorf("Snippet = %q, want body excerpt", decodeErr.Snippet)
		}
	})

	t.Run("non-JSON error status", func(t *testing.T) {
		t.Parallel()
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		_, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", models.GenreAll))
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("Recommend() error = %v, want *StatusError", err)
		}
		if statusErr.StatusCode != http.StatusBadGateway {
			t.Errorf("StatusCode = %d, want 502", statusErr.StatusCode)
		}
	})

	t.Run("network error", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.NotFoundHandler())
		client := NewClient(server.URL, testConfig(), nil)
		server.Close()

		if _, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", models.GenreAll)); err == nil {
			t.Fatal("Recommend() error = nil, want transport error")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(server.Close)
		t.Cleanup(func() { close(release) })

		cfg := testConfig()
		cfg.Timeout = 50 * time.Millisecond
		client := NewClient(server.URL, cfg, server.Client())

		_, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", models.GenreAll))
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("Recommend() error = %v, want deadline exceeded", err)
		}
	})

	t.Run("invalid parameters", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})

		_, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", "Horror"))
		var verr *validation.RequestValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Recommend() error = %v, want validation error", err)
		}
		if calls.Load() != 0 {
			t.Errorf("service called %d times for invalid parameters", calls.Load())
		}
	})
}

func TestRecommend_CircuitBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	params := models.NewQueryParameters("happy", models.GenreAll)
	for i := 0; i < 5; i++ {
		if _, err := client.Recommend(context.Background(), params); err == nil {
			t.Fatalf("request %d: error = nil, want failure", i)
		}
	}

	if got := client.BreakerState(); got != "open" {
		t.Fatalf("BreakerState() = %q, want open", got)
	}

	_, err := client.Recommend(context.Background(), params)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("Recommend() error = %v, want ErrCircuitOpen", err)
	}
	if calls.Load() != 5 {
		t.Errorf("service called %d times, want 5 (open breaker must not call)", calls.Load())
	}
}

func TestRecommend_CancellationDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	params := models.NewQueryParameters("happy", models.GenreAll)
	for i := 0; i < 6; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		if _, err := client.Recommend(ctx, params); err == nil {
			t.Fatalf("request %d: error = nil, want cancellation", i)
		}
		cancel()
	}

	if got := client.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want closed after caller cancellations", got)
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"message":"MoodFlix API","version":"1.2.0","endpoints":{"recommend":"/recommend"}}`)
	})

	info, err := client.Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if info.Version != "1.2.0" {
		t.Errorf("Version = %q, want 1.2.0", info.Version)
	}
	if info.Endpoints["recommend"] != "/recommend" {
		t.Errorf("Endpoints = %v", info.Endpoints)
	}
}

func TestPing_Failure(t *testing.T) {
	t.Parallel()

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Ping(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Ping() error = %v, want *StatusError", err)
	}
}

func TestPing_FailuresDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	var recommends atomic.Int32
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/recommend" {
			recommends.Add(1)
			fmt.Fprint(w, `{"results":[{"title":"A"}]}`)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 10; i++ {
		if _, err := client.Ping(context.Background()); err == nil {
			t.Fatalf("ping %d: error = nil, want failure", i)
		}
	}

	if got := client.BreakerState(); got != "closed" {
		t.Fatalf("BreakerState() = %q after failed pings, want closed", got)
	}
	movies, err := client.Recommend(context.Background(), models.NewQueryParameters("happy", models.GenreAll))
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(movies) != 1 || recommends.Load() != 1 {
		t.Errorf("movies = %d, service calls = %d, want 1 and 1", len(movies), recommends.Load())
	}
}

func TestBaseURLTrimmed(t *testing.T) {
	t.Parallel()

	client := NewClient("http://localhost:8000/", testConfig(), nil)
	if client.BaseURL() != "http://localhost:8000" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", client.BaseURL())
	}
	want := "http://localhost:8000/recommend?genre=Comedy&mood=sad&top_n=15"
	if got := client.buildURL(models.NewQueryParameters("sad", "Comedy")); got != want {
		t.Errorf("buildURL() = %q, want %q", got, want)
	}
}

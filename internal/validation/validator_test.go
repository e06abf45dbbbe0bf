// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package validation

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/tomtom215/moodflix/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make(chan interface{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- GetValidator()
		}()
	}
	wg.Wait()
	close(results)

	first := GetValidator()
	for v := range results {
		if v != first {
			t.Fatal("GetValidator() returned different instances")
		}
	}
}

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		params     models.QueryParameters
		wantFields []string
	}{
		{
			name:   "valid all genres",
			params: models.NewQueryParameters("happy", models.GenreAll),
		},
		{
			name:   "valid specific genre",
			params: models.NewQueryParameters("thoughtful", "Drama"),
		},
		{
			name:       "empty mood",
			params:     models.NewQueryParameters("", models.GenreAll),
			wantFields: []string{"mood"},
		},
		{
			name:       "unknown genre",
			params:     models.NewQueryParameters("happy", "Horror"),
			wantFields: []string{"genre"},
		},
		{
			name:       "genre is case sensitive",
			params:     models.NewQueryParameters("happy", "all"),
			wantFields: []string{"genre"},
		},
		{
			name:       "mood too long",
			params:     models.NewQueryParameters(strings.Repeat("x", 201), models.GenreAll),
			wantFields: []string{"mood"},
		},
		{
			name:       "top_n out of range",
			params:     models.QueryParameters{Mood: "happy", Genre: models.GenreAll, TopN: 0},
			wantFields: []string{"top_n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateQuery(tt.params)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateQuery() error = %v, want nil", err)
				}
				return
			}

			var verr *RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateQuery() error = %v, want *RequestValidationError", err)
			}
			got := verr.Fields()
			if len(got) != len(tt.wantFields) {
				t.Fatalf("Fields() = %v, want %v", got, tt.wantFields)
			}
			for i := range got {
				if got[i] != tt.wantFields[i] {
					t.Errorf("Fields()[%d] = %q, want %q", i, got[i], tt.wantFields[i])
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		params models.QueryParameters
		want   string
	}{
		{models.NewQueryParameters("", models.GenreAll), "mood is required"},
		{models.NewQueryParameters("happy", "Horror"), "genre must be All or a known genre"},
		{models.NewQueryParameters(strings.Repeat("x", 201), models.GenreAll), "mood must be at most 200 characters"},
		{models.QueryParameters{Mood: "happy", Genre: "Crime", TopN: 101}, "top_n must be at most 100"},
	}

	for _, tt := range tests {
		verr := ValidateStruct(&tt.params)
		if verr == nil {
			t.Fatalf("ValidateStruct(%+v) = nil, want error", tt.params)
		}
		if verr.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", verr.Error(), tt.want)
		}
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q, want %q", verr.Error(), "validation failed")
	}
}

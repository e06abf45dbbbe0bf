// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const pageBody = "<!doctype html><title>MoodFlix</title>"

func pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, strings.Repeat(pageBody, 20))
	})
}

func TestCompression_GzipsWhenAccepted(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	rec := httptest.NewRecorder()
	Compression(pageHandler()).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
	if rec.Header().Get("Vary") != "Accept-Encoding" {
		t.Errorf("Vary = %q, want Accept-Encoding", rec.Header().Get("Vary"))
	}

	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	body, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("reading gzip body: %v", err)
	}
	if string(body) != strings.Repeat(pageBody, 20) {
		t.Error("decompressed body does not match")
	}
}

func TestCompression_PassThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		encoding string
	}{
		{"no accept-encoding", http.MethodGet, ""},
		{"other encodings only", http.MethodGet, "deflate, br"},
		{"gzip refused", http.MethodGet, "gzip;q=0, br"},
		{"head request", http.MethodHead, "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.encoding != "" {
				req.Header.Set("Accept-Encoding", tt.encoding)
			}
			rec := httptest.NewRecorder()
			Compression(pageHandler()).ServeHTTP(rec, req)

			if rec.Header().Get("Content-Encoding") != "" {
				t.Errorf("Content-Encoding = %q, want none", rec.Header().Get("Content-Encoding"))
			}
			if tt.method == http.MethodGet && !strings.HasPrefix(rec.Body.String(), pageBody) {
				t.Error("body was altered")
			}
		})
	}
}

func TestAcceptsGzip(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"gzip":               true,
		"GZIP":               true,
		"br, gzip;q=0.8":     true,
		"gzip; q=0":          false,
		"gzip;q=0.000":       false,
		"identity":           false,
		"":                   false,
		"x-gzip":             false,
		"deflate , gzip ,br": true,
	}
	for header, want := range tests {
		if got := acceptsGzip(header); got != want {
			t.Errorf("acceptsGzip(%q) = %v, want %v", header, got, want)
		}
	}
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

/*
Package models defines the data structures exchanged with the recommendation service.

Key Components:

  - MovieSummary: one ranked recommendation (title, year, genre, poster, rating,
    overview, optional cast), decoded tolerantly from loosely typed upstream JSON
  - QueryParameters: the (mood, genre, top_n) tuple identifying a request
  - RecommendResponse: the GET /recommend body, including the {error, message}
    failure envelope
  - ServiceInfo: the service health endpoint body

Ordering:

The order of MovieSummary values returned by the service is the display rank.
Nothing in this module re-sorts results.
*/
package models

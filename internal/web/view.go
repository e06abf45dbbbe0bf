// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package web

import (
	"github.com/tomtom215/moodflix/internal/card"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/page"
)

// View is the rendered state of one page request.
type View struct {
	Mood            string     `json:"mood"`
	Genre           string     `json:"genre"`
	Genres          []string   `json:"genres"`
	Phase           string     `json:"phase"`
	Heading         string     `json:"heading"`
	Message         string     `json:"message,omitempty"`
	Primary         []CardView `json:"primary"`
	TrendingHeading string     `json:"trending_heading,omitempty"`
	Trending        []CardView `json:"trending"`
}

// CardView is one movie card. Overview and Cast are empty on trend cards.
type CardView struct {
	Title       string `json:"title"`
	Year        string `json:"year,omitempty"`
	Rating      string `json:"rating"`
	Badge       string `json:"badge,omitempty"`
	Overview    string `json:"overview,omitempty"`
	Cast        string `json:"cast,omitempty"`
	Poster      string `json:"poster"`
	Placeholder string `json:"placeholder"`
}

// pageData is the template context: the view plus static copy.
type pageData struct {
	View
	Brand     string
	Hero      string
	Prompt    string
	InputHint string
}

// viewOf snapshots a settled page.
func viewOf(p *page.Page) View {
	v := View{
		Mood:     p.Mood(),
		Genre:    p.Genre(),
		Genres:   models.Genres(),
		Phase:    p.Phase().String(),
		Heading:  p.Heading(),
		Primary:  []CardView{},
		Trending: []CardView{},
	}

	switch p.Phase() {
	case page.PhaseLoading:
		v.Message = page.LoadingMessage
	case page.PhaseEmpty:
		v.Message = page.EmptyMessage
	case page.PhaseResults:
		for _, c := range p.Primary() {
			d := c.Details()
			v.Primary = append(v.Primary, CardView{
				Title:       d.Title,
				Year:        d.Year,
				Rating:      d.Rating,
				Badge:       c.Badge(),
				Overview:    d.Overview,
				Cast:        d.Cast,
				Poster:      c.PosterURL(),
				Placeholder: card.FullPlaceholder,
			})
		}
		for _, c := range p.Trending() {
			d := c.Details()
			v.Trending = append(v.Trending, CardView{
				Title:       d.Title,
				Year:        d.Year,
				Rating:      d.Rating,
				Poster:      c.PosterURL(),
				Placeholder: card.CompactPlaceholder,
			})
		}
		if len(v.Trending) > 0 {
			v.TrendingHeading = page.TrendingHeading
		}
	}
	return v
}

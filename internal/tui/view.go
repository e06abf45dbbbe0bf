// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/moodflix/internal/card"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/page"
)

const (
	cardWidth  = 24
	cardGap    = 1
	maxColumns = 4
	idleHint   = "Start typing to get recommendations."

	// fullCardLines is the body height of every primary card: the overlay's
	// title, meta line, overview and cast.
	fullCardLines = card.CompactTitleLines + 1 + card.OverviewLines + 1
)

// columns returns how many full cards fit on one grid row.
func (m Model) columns() int {
	if m.width <= 0 {
		return maxColumns
	}
	// +2 for the border, +2 for padding.
	cols := m.width / (cardWidth + 4 + cardGap)
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}

// View renders the page.
func (m Model) View() string {
	sections := []string{
		BrandStyle.Render(page.Brand) + "  " + HeroStyle.Render(page.Hero),
		"",
		PromptStyle.Render(page.Prompt),
		m.input.View(),
		m.renderGenres(),
		HeadingStyle.Render(m.page.Heading()),
	}

	switch m.page.Phase() {
	case page.PhaseIdle:
		sections = append(sections, MutedStyle.Render(idleHint))
	case page.PhaseLoading:
		sections = append(sections, m.spinner.View()+" "+page.LoadingMessage)
	case page.PhaseEmpty:
		sections = append(sections, MutedStyle.Render(page.EmptyMessage))
	case page.PhaseResults:
		sections = append(sections, m.renderGrid())
		if trending := m.renderTrending(); trending != "" {
			sections = append(sections, trending)
		}
	}

	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m Model) renderGenres() string {
	genres := models.Genres()
	parts := make([]string, len(genres))
	for i, g := range genres {
		if i == m.genreIdx {
			parts[i] = ActiveGenreStyle.Render(g)
		} else {
			parts[i] = InactiveGenreStyle.Render(g)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderGrid() string {
	cards := m.page.Primary()
	cols := m.columns()

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, renderFullCard(cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFullCard draws a primary grid card. Hidden cards show the poster and
// genre badge; a revealed card shows its details in the same box instead.
func renderFullCard(c *card.Full) string {
	style := CardStyle
	body := cardFront(c)
	if d, ok := c.Overlay(); ok {
		style = SelectedCardStyle
		body = cardOverlay(d)
	}

	body = lipgloss.NewStyle().
		Width(cardWidth).
		Height(fullCardLines).
		MaxHeight(fullCardLines).
		Render(body)
	return style.MarginRight(cardGap).Render(body)
}

func cardFront(c *card.Full) string {
	lines := []string{posterLabel(c.PosterFailed())}
	if badge := c.Badge(); badge != "" {
		lines = append(lines, BadgeStyle.Render(badge))
	}
	return strings.Join(lines, "\n")
}

// cardOverlay clamps the title to two lines, the overview to three and cast to one.
func cardOverlay(d card.Details) string {
	clamp := func(lines int) lipgloss.Style {
		return lipgloss.NewStyle().Width(cardWidth).MaxHeight(lines)
	}

	var meta []string
	if d.Year != "" {
		meta = append(meta, d.Year)
	}
	if d.Rating != "" {
		meta = append(meta, RatingStyle.Render("★ "+d.Rating))
	}

	lines := []string{
		clamp(card.CompactTitleLines).Render(CardTitleStyle.Render(d.Title)),
		MutedStyle.Render(strings.Join(meta, "  ")),
	}
	if d.Overview != "" {
		lines = append(lines, clamp(card.OverviewLines).Render(d.Overview))
	}
	if d.Cast != "" {
		lines = append(lines, clamp(1).Render(MutedStyle.Render("Cast: "+d.Cast)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTrending() string {
	cards := m.page.Trending()
	if len(cards) == 0 {
		return ""
	}

	lines := []string{HeadingStyle.Render(page.TrendingHeading)}
	for _, c := range cards {
		d := c.Details()
		title := lipgloss.NewStyle().
			Width(cardWidth * 2).
			MaxHeight(card.CompactTitleLines).
			Render(d.Title)

		var meta []string
		if d.Year != "" {
			meta = append(meta, d.Year)
		}
		if d.Rating != "" {
			meta = append(meta, RatingStyle.Render("★ "+d.Rating))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			posterLabel(c.PosterFailed())+" ",
			title,
			"  "+MutedStyle.Render(strings.Join(meta, "  ")),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	var service string
	switch m.service {
	case serviceOnline:
		service = OnlineStyle.Render("● online")
		if m.serviceVersion != "" {
			service += MutedStyle.Render(" v" + m.serviceVersion)
		}
	case serviceOffline:
		service = OfflineStyle.Render("● offline")
	default:
		service = MutedStyle.Render("● connecting")
	}

	mode := "typing"
	if m.focus == focusBrowse {
		mode = "browsing"
	}

	status := fmt.Sprintf("%s  %s  genre: %s", service, mode, m.page.Genre())
	if m.page.Phase() == page.PhaseResults {
		status += fmt.Sprintf("  %d results", len(m.page.Primary())+len(m.page.Trending()))
	}
	return StatusBarStyle.Render(status)
}

// posterLabel stands in for the image, which a terminal cannot show.
func posterLabel(failed bool) string {
	if failed {
		return MutedStyle.Render("▢ no poster")
	}
	return "▣ poster"
}

// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#E50914")
	colorText    = lipgloss.Color("#F5F5F5")
	colorMuted   = lipgloss.Color("#8C8C8C")
	colorSurface = lipgloss.Color("#2A2A2A")
	colorGold    = lipgloss.Color("#F5C518")
	colorOnline  = lipgloss.Color("#6EF4A1")
)

var (
	BrandStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	HeroStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ActiveGenreStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorAccent).
				Padding(0, 1)

	InactiveGenreStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(0, 1)

	SelectedCardStyle = CardStyle.
				BorderForeground(colorAccent)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1)

	RatingStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	OnlineStyle = lipgloss.NewStyle().
			Foreground(colorOnline)

	OfflineStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

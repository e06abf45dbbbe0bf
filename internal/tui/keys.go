// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for both focus modes.
type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Browse    key.Binding
	Edit      key.Binding
	NextGenre key.Binding
	PrevGenre key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Help      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search now"),
	),
	Browse: key.NewBinding(
		key.WithKeys("esc", "down"),
		key.WithHelp("esc", "browse results"),
	),
	Edit: key.NewBinding(
		key.WithKeys("/", "i"),
		key.WithHelp("/", "edit mood"),
	),
	NextGenre: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next genre"),
	),
	PrevGenre: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous genre"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous card"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next card"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "row up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "row down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextGenre, k.Browse, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Browse, k.Edit},
		{k.NextGenre, k.PrevGenre},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

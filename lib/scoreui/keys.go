// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the scoreboard's key bindings.
type KeyMap struct {
	// List cursor on the active tab.
	Up   key.Binding
	Down key.Binding

	// Tabs.
	NextTab     key.Binding
	PreviousTab key.Binding

	// Team side on the Boxscore tab.
	NextTeam     key.Binding
	PreviousTeam key.Binding

	ToggleChart key.Binding
	Refresh     key.Binding

	// Games of the day.
	NextGame     key.Binding
	PreviousGame key.Binding
	PickGame     key.Binding

	// Play filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	// Menu and filter input.
	Confirm key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set: arrows alongside vim
// keys, shift for the team switch.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next tab"),
	),
	PreviousTab: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev tab"),
	),
	NextTeam: key.NewBinding(
		key.WithKeys("L", "shift+right"),
		key.WithHelp("L/S-→", "team"),
	),
	PreviousTeam: key.NewBinding(
		key.WithKeys("H", "shift+left"),
		key.WithHelp("H/S-←", "team"),
	),
	ToggleChart: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "chart"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	NextGame: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next game"),
	),
	PreviousGame: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev game"),
	),
	PickGame: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "games"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nbascores/lib/nba"
)

// Theme defines the color palette for the scoreboard. All colors are
// ANSI 256-color codes; lipgloss degrades them for smaller profiles.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Tab bar and table headers.
	HeaderForeground lipgloss.Color
	ActiveTab        lipgloss.Color
	InactiveTab      lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Team accents. The score-flow chart colors a column by the team
	// leading at that point.
	HomeAccent    lipgloss.Color
	VisitorAccent lipgloss.Color

	// Box-score rows: players on the floor versus the bench.
	OnCourt lipgloss.Color
	Bench   lipgloss.Color

	// Game status badges.
	StatusScheduled lipgloss.Color
	StatusLive      lipgloss.Color
	StatusFinal     lipgloss.Color

	// Background tint for plays that arrived with the latest refresh.
	// ScoringGlow marks plays that changed the score.
	PlayGlow    lipgloss.Color
	ScoringGlow lipgloss.Color

	// Fuzzy filter match highlighting.
	MatchForeground lipgloss.Color

	// Status bar messages routed from the logger.
	WarnText  lipgloss.Color
	ErrorText lipgloss.Color

	// Floating menus.
	MenuForeground lipgloss.Color
	MenuBackground lipgloss.Color
}

// StatusColor returns the badge color for a game status. Unknown
// statuses use FaintText.
func (theme Theme) StatusColor(status nba.GameStatus) lipgloss.Color {
	switch status {
	case nba.StatusScheduled:
		return theme.StatusScheduled
	case nba.StatusLive:
		return theme.StatusLive
	case nba.StatusFinal:
		return theme.StatusFinal
	default:
		return theme.FaintText
	}
}

// MarginColor returns the accent of the team a score margin favours:
// positive margins are home leads. A tie uses FaintText.
func (theme Theme) MarginColor(margin int) lipgloss.Color {
	switch {
	case margin > 0:
		return theme.HomeAccent
	case margin < 0:
		return theme.VisitorAccent
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("220"), // amber, like the table header row
	ActiveTab:        lipgloss.Color("220"),
	InactiveTab:      lipgloss.Color("114"), // green
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HomeAccent:    lipgloss.Color("75"),  // blue
	VisitorAccent: lipgloss.Color("208"), // orange

	OnCourt: lipgloss.Color("114"), // green
	Bench:   lipgloss.Color("167"), // muted red

	StatusScheduled: lipgloss.Color("245"),
	StatusLive:      lipgloss.Color("196"),
	StatusFinal:     lipgloss.Color("252"),

	PlayGlow:    lipgloss.Color("237"),
	ScoringGlow: lipgloss.Color("58"), // dark amber

	MatchForeground: lipgloss.Color("220"),

	WarnText:  lipgloss.Color("220"),
	ErrorText: lipgloss.Color("196"),

	MenuForeground: lipgloss.Color("252"),
	MenuBackground: lipgloss.Color("237"),
}

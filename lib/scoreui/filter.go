// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nbascores/lib/nba"
	"github.com/bureau-foundation/nbascores/lib/tui"
)

// PlayFilter narrows the play list with an fzf-style fuzzy query over
// play descriptions. The filter keeps chronological order; it does not
// rank.
type PlayFilter struct {
	// Input is the current query.
	Input string

	// Active is true while keystrokes go to the query.
	Active bool
}

// Apply returns the indexes of the plays that match, in play order,
// with the matched rune positions of each description. An empty query
// keeps every play.
func (filter *PlayFilter) Apply(plays []nba.Play) ([]int, [][]int) {
	descriptions := make([]string, len(plays))
	for index, play := range plays {
		descriptions[index] = play.Description
	}
	indexes, results := tui.FuzzyFilter(descriptions, filter.Input)
	positions := make([][]int, len(results))
	for index, result := range results {
		positions[index] = result.Positions
	}
	return indexes, positions
}

// HandleRune appends a typed character.
func (filter *PlayFilter) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character and reports whether the
// query changed.
func (filter *PlayFilter) HandleBackspace() bool {
	if filter.Input == "" {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear empties the query and leaves input mode.
func (filter *PlayFilter) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter line, or "" when there is no query and the
// filter is not being edited.
func (filter *PlayFilter) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}
	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + filter.Input + cursor)
	}
	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" filter: " + filter.Input)
}

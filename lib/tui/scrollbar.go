// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Viewport describes a window of Visible rows onto Total rows, scrolled
// down by Offset.
type Viewport struct {
	Total   int
	Visible int
	Offset  int
}

// Follow returns the viewport scrolled the minimum amount that puts
// row cursor on screen, with Offset clamped so the window never runs
// past the end. A negative cursor only clamps.
func (viewport Viewport) Follow(cursor int) Viewport {
	if viewport.Visible <= 0 {
		viewport.Offset = 0
		return viewport
	}
	maxOffset := max(viewport.Total-viewport.Visible, 0)
	if cursor >= 0 {
		if cursor < viewport.Offset {
			viewport.Offset = cursor
		}
		if cursor >= viewport.Offset+viewport.Visible {
			viewport.Offset = cursor - viewport.Visible + 1
		}
	}
	viewport.Offset = min(max(viewport.Offset, 0), maxOffset)
	return viewport
}

// End returns one past the last visible row index.
func (viewport Viewport) End() int {
	return min(viewport.Offset+viewport.Visible, viewport.Total)
}

// RenderScrollbar produces a single-column scrollbar of the given
// height for viewport. When everything fits the thumb fills the track.
func RenderScrollbar(theme Theme, height int, viewport Viewport, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.ActiveTab
	}
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)

	thumbOffset, thumbSize := 0, height
	if viewport.Total > viewport.Visible && viewport.Total > 0 {
		thumbSize = max(height*viewport.Visible/viewport.Total, 1)
		scrollable := viewport.Total - viewport.Visible
		if track := height - thumbSize; track > 0 {
			thumbOffset = viewport.Offset * track / scrollable
		}
		thumbOffset = min(thumbOffset, height-thumbSize)
	}

	lines := make([]string, height)
	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

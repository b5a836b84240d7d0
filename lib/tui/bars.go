// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarSet is the glyph ramp used to draw one cell of a vertical bar.
// Levels[0] is an empty cell and the last entry a full one; the
// entries between are partial fills from the bottom.
type BarSet struct {
	Levels []string
}

// NineLevels draws bars in eighths of a cell.
var NineLevels = BarSet{Levels: []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}}

// ThreeLevels draws bars in half cells, for fonts without the
// eighth-block glyphs.
var ThreeLevels = BarSet{Levels: []string{" ", "▄", "█"}}

// BarSetFor returns NineLevels when enhanced is set, ThreeLevels
// otherwise.
func BarSetFor(enhanced bool) BarSet {
	if enhanced {
		return NineLevels
	}
	return ThreeLevels
}

// steps is the number of partial fills per cell.
func (set BarSet) steps() int {
	return len(set.Levels) - 1
}

// Column renders a bar of the given height filled to units, where a
// full cell is set.steps() units. The result lists cells top to bottom.
func (set BarSet) Column(height, units int) []string {
	steps := set.steps()
	cells := make([]string, height)
	for row := range cells {
		fromBottom := height - 1 - row
		fill := min(max(units-fromBottom*steps, 0), steps)
		cells[row] = set.Levels[fill]
	}
	return cells
}

// SampleColumns reduces values to at most width entries. Each column
// takes the last value of its share of the input, so the final column
// always shows the final value.
func SampleColumns(values []int, width int) []int {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) <= width {
		return append([]int(nil), values...)
	}
	columns := make([]int, width)
	for column := range columns {
		end := (column + 1) * len(values) / width
		columns[column] = values[end-1]
	}
	return columns
}

// RenderFlow draws a score-flow chart of height rows: one column per
// sampled margin, bar height proportional to the absolute margin, and
// colored by the team the margin favours (positive is home). The
// baseline row beneath the bars is always drawn.
func RenderFlow(theme Theme, set BarSet, margins []int, width, height int) string {
	if width <= 0 || height <= 1 {
		return ""
	}
	barHeight := height - 1
	columns := SampleColumns(margins, width)

	peak := 1
	for _, margin := range columns {
		peak = max(peak, abs(margin))
	}
	fullUnits := barHeight * set.steps()

	rows := make([]strings.Builder, barHeight)
	for _, margin := range columns {
		units := (abs(margin)*fullUnits + peak/2) / peak
		if margin != 0 {
			units = max(units, 1)
		}
		style := lipgloss.NewStyle().Foreground(theme.MarginColor(margin))
		for row, cell := range set.Column(barHeight, units) {
			if cell == set.Levels[0] {
				rows[row].WriteString(cell)
			} else {
				rows[row].WriteString(style.Render(cell))
			}
		}
	}

	lines := make([]string, 0, height)
	for row := range rows {
		lines = append(lines, rows[row].String()+strings.Repeat(" ", width-len(columns)))
	}
	baseline := lipgloss.NewStyle().Foreground(theme.BorderColor).Render(strings.Repeat("─", width))
	lines = append(lines, baseline)
	return strings.Join(lines, "\n")
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

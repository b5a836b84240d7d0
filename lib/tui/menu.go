// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MenuOption is one selectable row of a Menu.
type MenuOption struct {
	Label string
	Value string
}

// Menu is a floating list the view splices over its content. The
// owning model routes keys to it while it is open: MoveUp/MoveDown to
// navigate (both wrap), then Selected on enter.
type Menu struct {
	Title   string
	Options []MenuOption
	Cursor  int
}

// NewMenu returns a menu with the cursor on the option whose value is
// current, or on the first option.
func NewMenu(title string, options []MenuOption, current string) *Menu {
	menu := &Menu{Title: title, Options: options}
	for index, option := range options {
		if option.Value == current {
			menu.Cursor = index
			break
		}
	}
	return menu
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (menu *Menu) MoveUp() {
	if len(menu.Options) == 0 {
		return
	}
	menu.Cursor--
	if menu.Cursor < 0 {
		menu.Cursor = len(menu.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (menu *Menu) MoveDown() {
	if len(menu.Options) == 0 {
		return
	}
	menu.Cursor++
	if menu.Cursor >= len(menu.Options) {
		menu.Cursor = 0
	}
}

// Selected returns the highlighted option and false when the menu is
// empty.
func (menu *Menu) Selected() (MenuOption, bool) {
	if menu.Cursor < 0 || menu.Cursor >= len(menu.Options) {
		return MenuOption{}, false
	}
	return menu.Options[menu.Cursor], true
}

// Width returns the rendered width in columns: one column of padding
// each side, a two-column marker, and the widest label or title.
func (menu *Menu) Width() int {
	widest := ansi.StringWidth(menu.Title)
	for _, option := range menu.Options {
		widest = max(widest, ansi.StringWidth(option.Label)+2)
	}
	return widest + 2
}

// Render returns the menu lines, all of equal visible width, for
// SpliceOverlay or CenterOverlay.
func (menu *Menu) Render(theme Theme) []string {
	width := menu.Width()
	inner := width - 2

	background := lipgloss.NewStyle().
		Foreground(theme.MenuForeground).
		Background(theme.MenuBackground)
	title := background.Bold(true).Foreground(theme.HeaderForeground)
	selected := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)

	pad := func(content string) string {
		return " " + content + strings.Repeat(" ", max(inner-ansi.StringWidth(content), 0)) + " "
	}

	lines := []string{title.Render(pad(menu.Title))}
	for index, option := range menu.Options {
		if index == menu.Cursor {
			lines = append(lines, selected.Render(pad("> "+option.Label)))
		} else {
			lines = append(lines, background.Render(pad("  "+option.Label)))
		}
	}
	return lines
}

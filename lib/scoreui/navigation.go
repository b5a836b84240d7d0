// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

// Tab identifies the active view.
type Tab int

const (
	// TabGame shows the line score, score-flow chart, and plays.
	TabGame Tab = iota
	// TabBoxScore shows one team's player statistics.
	TabBoxScore

	tabCount = 2
)

// String returns the tab's title.
func (tab Tab) String() string {
	switch tab {
	case TabGame:
		return "Game"
	case TabBoxScore:
		return "Boxscore"
	default:
		return "?"
	}
}

// TeamSide selects which team the Boxscore tab shows.
type TeamSide int

const (
	Home TeamSide = iota
	Visitor
)

// Other returns the opposite side.
func (side TeamSide) Other() TeamSide {
	if side == Home {
		return Visitor
	}
	return Home
}

// NoSelection is the cursor value of a list with nothing selected.
const NoSelection = -1

// StatefulList is a cursor over a list of Len items. The cursor is
// NoSelection until the first move. Both directions wrap, with one
// asymmetry: moving back from NoSelection lands on the first item,
// not the last.
type StatefulList struct {
	length   int
	selected int
}

// NewStatefulList returns a list of length items with no selection.
func NewStatefulList(length int) StatefulList {
	return StatefulList{length: max(length, 0), selected: NoSelection}
}

// Len returns the number of items.
func (list *StatefulList) Len() int {
	return list.length
}

// Selected returns the cursor index, or NoSelection.
func (list *StatefulList) Selected() int {
	return list.selected
}

// Next moves the cursor down. From the last item or from NoSelection
// it goes to the first item.
func (list *StatefulList) Next() {
	if list.length == 0 {
		return
	}
	if list.selected < 0 || list.selected >= list.length-1 {
		list.selected = 0
		return
	}
	list.selected++
}

// Previous moves the cursor up. From the first item it goes to the
// last; from NoSelection it goes to the first.
func (list *StatefulList) Previous() {
	if list.length == 0 {
		return
	}
	switch {
	case list.selected < 0:
		list.selected = 0
	case list.selected == 0:
		list.selected = list.length - 1
	default:
		list.selected--
	}
}

// Unselect clears the cursor.
func (list *StatefulList) Unselect() {
	list.selected = NoSelection
}

// Resize changes the item count, keeping the cursor when it is still
// in range and clearing it otherwise.
func (list *StatefulList) Resize(length int) {
	list.length = max(length, 0)
	if list.selected >= list.length {
		list.selected = NoSelection
	}
}

// Navigation is the scoreboard's view state.
type Navigation struct {
	Tab  Tab
	Team TeamSide

	// Plays is the cursor over the (filtered) play list on the Game
	// tab; Players the cursor over the shown team's rows on the
	// Boxscore tab.
	Plays   StatefulList
	Players StatefulList

	// ChartVisible toggles the score-flow chart. Display only.
	ChartVisible bool
}

// NewNavigation returns the initial state: Game tab, home team, no
// cursors, chart shown.
func NewNavigation(plays, homePlayers int) Navigation {
	return Navigation{
		Tab:          TabGame,
		Team:         Home,
		Plays:        NewStatefulList(plays),
		Players:      NewStatefulList(homePlayers),
		ChartVisible: true,
	}
}

// AdvanceTab moves to the next tab, wrapping.
func (navigation *Navigation) AdvanceTab() {
	navigation.Tab = (navigation.Tab + 1) % tabCount
}

// RetreatTab moves to the previous tab, wrapping.
func (navigation *Navigation) RetreatTab() {
	navigation.Tab = (navigation.Tab + tabCount - 1) % tabCount
}

// AdvanceTeam switches between home and visitor. It only applies on
// the Boxscore tab and reports whether the side changed; the caller
// resizes Players for the new team.
func (navigation *Navigation) AdvanceTeam() bool {
	if navigation.Tab != TabBoxScore {
		return false
	}
	navigation.Team = navigation.Team.Other()
	navigation.Players.Unselect()
	return true
}

// ToggleChart flips chart visibility.
func (navigation *Navigation) ToggleChart() {
	navigation.ChartVisible = !navigation.ChartVisible
}

// ActiveList returns the cursor the up/down keys drive on the current
// tab.
func (navigation *Navigation) ActiveList() *StatefulList {
	if navigation.Tab == TabBoxScore {
		return &navigation.Players
	}
	return &navigation.Plays
}

// CursorNext moves the active list's cursor down.
func (navigation *Navigation) CursorNext() {
	navigation.ActiveList().Next()
}

// CursorPrevious moves the active list's cursor up.
func (navigation *Navigation) CursorPrevious() {
	navigation.ActiveList().Previous()
}

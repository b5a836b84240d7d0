// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bureau-foundation/nbascores/lib/nba"
	"github.com/bureau-foundation/nbascores/lib/tui"
)

// boxScoreHeaders are the player table columns.
var boxScoreHeaders = []string{
	"Player", "P", "Min", "Pts", "Reb", "Ast", "Stl", "Blk",
	"FGM", "FGA", "FG%", "3PM", "3PA", "3P%", "FTM", "FTA", "FT%",
	"OREB", "DREB", "TOV", "PF", "+/-",
}

// tableChrome is the number of lines a bordered table adds around its
// rows: top border, header, header separator, bottom border.
const tableChrome = 4

func playerRow(player *nba.Player) []string {
	name := player.Name()
	if player.Jersey != "" {
		name = "#" + player.Jersey + " " + name
	}
	return []string{
		name, player.Position,
		player.Minutes.String(), player.Points.String(), player.TotalRebounds.String(),
		player.Assists.String(), player.Steals.String(), player.Blocks.String(),
		player.FieldGoalsMade.String(), player.FieldGoalsAtt.String(), player.FieldGoalPct.String(),
		player.ThreesMade.String(), player.ThreesAtt.String(), player.ThreePct.String(),
		player.FreeThrowsMade.String(), player.FreeThrowsAtt.String(), player.FreeThrowPct.String(),
		player.OffRebounds.String(), player.DefRebounds.String(),
		player.Turnovers.String(), player.PersonalFouls.String(), player.PlusMinus.String(),
	}
}

func totalsRow(totals *nba.Totals) []string {
	return []string{
		"Totals", "",
		totals.Minutes.String(), totals.Points.String(), totals.TotalRebounds.String(),
		totals.Assists.String(), totals.Steals.String(), totals.Blocks.String(),
		totals.FieldGoalsMade.String(), totals.FieldGoalsAtt.String(), totals.FieldGoalPct.String(),
		totals.ThreesMade.String(), totals.ThreesAtt.String(), totals.ThreePct.String(),
		totals.FreeThrowsMade.String(), totals.FreeThrowsAtt.String(), totals.FreeThrowPct.String(),
		totals.OffRebounds.String(), totals.DefRebounds.String(),
		totals.Turnovers.String(), totals.PersonalFouls.String(), totals.PlusMinus.String(),
	}
}

func (model Model) renderBoxScoreTab(height int) string {
	boxScore := model.snapshot.BoxScore
	lines := []string{model.renderTeamSelector(boxScore)}
	if boxScore.Source == nba.SourceRoster {
		lines = append(lines, " "+lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("No stats yet. Showing the active roster."))
	}
	if leaders := model.renderLeaders(model.selectedTeam()); leaders != "" {
		lines = append(lines, leaders)
	}

	players := model.teamPlayers()
	if len(players) == 0 {
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("No players listed."))
		return strings.Join(lines, "\n")
	}

	team := model.selectedTeam()
	showTotals := boxScore.Source == nba.SourceStats && team.Totals.Points.Present()
	visible := height - len(lines) - tableChrome
	if showTotals {
		visible--
	}
	visible = max(visible, 1)

	cursor := model.nav.Players.Selected()
	follow := max(cursor, 0)
	viewport := tui.Viewport{Total: len(players), Visible: visible}.Follow(follow)

	rows := make([][]string, 0, viewport.End()-viewport.Offset+1)
	for index := viewport.Offset; index < viewport.End(); index++ {
		rows = append(rows, playerRow(&players[index]))
	}
	totalsIndex := -1
	if showTotals {
		totalsIndex = len(rows)
		rows = append(rows, totalsRow(&team.Totals))
	}

	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(model.theme.BorderColor)).
		BorderHeader(true).
		BorderRow(false).
		BorderColumn(false).
		Headers(boxScoreHeaders...).
		Rows(rows...).
		StyleFunc(func(row, column int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if column > 1 {
				style = style.Align(lipgloss.Right)
			}
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(model.theme.HeaderForeground)
			case row == totalsIndex:
				return style.Bold(true).Foreground(model.theme.NormalText)
			case row < 0 || row >= len(rows):
				return style
			}
			index := viewport.Offset + row
			if index == cursor {
				return style.Background(model.theme.SelectedBackground).Foreground(model.theme.SelectedForeground)
			}
			if players[index].OnCourt {
				return style.Foreground(model.theme.OnCourt)
			}
			return style.Foreground(model.theme.Bench)
		}).
		Render()

	lines = append(lines, rendered)
	return strings.Join(lines, "\n")
}

// renderTeamSelector lists both teams, home first, with the selected
// one highlighted and named in full.
func (model Model) renderTeamSelector(boxScore *nba.BoxScore) string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.ActiveTab).Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.InactiveTab)

	var parts []string
	for _, side := range []TeamSide{Home, Visitor} {
		team := &boxScore.Home
		if side == Visitor {
			team = &boxScore.Visitor
		}
		if side == model.nav.Team {
			parts = append(parts, activeStyle.Render(teamCode(team)))
		} else {
			parts = append(parts, inactiveStyle.Render(teamCode(team)))
		}
	}
	name := lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(model.selectedTeam().Name())
	return " " + strings.Join(parts, "  ") + "   " + name
}

// renderLeaders is the "Pts 31 Young · Reb 12 Capela" line, empty when
// the feed has not ranked players.
func (model Model) renderLeaders(team *nba.Team) string {
	leaders := team.Leaders
	if leaders == nil {
		return ""
	}
	var parts []string
	for _, category := range []struct {
		label  string
		leader nba.Leader
	}{
		{"Pts", leaders.Points},
		{"Reb", leaders.Rebounds},
		{"Ast", leaders.Assists},
	} {
		if !category.leader.Value.Present() || len(category.leader.Players) == 0 {
			continue
		}
		names := make([]string, 0, len(category.leader.Players))
		for _, player := range category.leader.Players {
			names = append(names, player.LastName)
		}
		parts = append(parts, category.label+" "+category.leader.Value.String()+" "+strings.Join(names, "/"))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Leaders: "+strings.Join(parts, " · "))
}

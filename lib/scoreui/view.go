// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/nbascores/lib/nba"
	"github.com/bureau-foundation/nbascores/lib/tui"
)

// emptyGamesText is shown when the date has no games.
const emptyGamesText = "There are no games today."

// chartHeight is the score-flow chart's height including its baseline.
const chartHeight = 6

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}
	if len(model.games) == 0 {
		return model.renderEmpty()
	}

	sections := []string{model.renderHeader()}
	if filterView := model.filter.View(model.theme, model.width); filterView != "" {
		sections = append(sections, filterView)
	}
	bodyHeight := max(model.height-len(sections)-2, 0)

	var body string
	switch {
	case model.snapshot == nil || model.snapshot.BoxScore == nil:
		body = model.renderLoading(bodyHeight)
	case model.nav.Tab == TabBoxScore:
		body = model.renderBoxScoreTab(bodyHeight)
	default:
		body = model.renderGameTab(bodyHeight)
	}
	sections = append(sections,
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).MaxWidth(model.width).Render(body),
		lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render(strings.Repeat("─", model.width)),
		model.renderHelp(),
	)

	output := strings.Join(sections, "\n")
	if model.menu != nil {
		output = tui.CenterOverlay(output, model.menu.Render(model.theme), model.width, model.height)
	}
	return output
}

func (model Model) renderEmpty() string {
	message := lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(emptyGamesText)
	hint := lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("q quit")
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, message, "", hint))
}

// renderLoading fills the body while the selected game has no
// snapshot: a spinner while a load runs, or the failure and a retry
// hint once it has given up.
func (model Model) renderLoading(height int) string {
	label := gameLabel(model.currentGame())
	if !model.loading && model.loadErr != nil {
		failure := lipgloss.NewStyle().Foreground(model.theme.ErrorText).
			Render(ansi.Truncate("Could not load "+label+": "+model.loadErr.Error(), max(model.width-4, 1), "…"))
		hint := lipgloss.NewStyle().Foreground(model.theme.HelpText).
			Render(model.keys.Refresh.Help().Key + " retry")
		return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, failure, "", hint))
	}
	text := "Loading " + label + "…"
	if model.loading {
		text = model.spinner.View() + " " + text
	}
	return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(text))
}

// renderHeader renders the tab bar embedded in a horizontal rule with
// the game summary on the right:
//
//	─── Game ─── Boxscore ─────────── BOS 98 @ ATL 104 · Q4 2:31 · 1/3 ─
func (model Model) renderHeader() string {
	ruleStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.ActiveTab)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.InactiveTab)

	var left strings.Builder
	width := 0
	left.WriteString(ruleStyle.Render("───"))
	width += 3
	for _, tab := range []Tab{TabGame, TabBoxScore} {
		label := tab.String()
		if tab == model.nav.Tab {
			left.WriteString(" " + activeStyle.Render(label) + " ")
		} else {
			left.WriteString(" " + inactiveStyle.Render(label) + " ")
		}
		left.WriteString(ruleStyle.Render("───"))
		width += len(label) + 2 + 3
	}

	summary := model.gameSummary()
	if len(model.games) > 1 {
		summary += fmt.Sprintf(" · %d/%d", model.gameIndex+1, len(model.games))
	}
	summaryWidth := ansi.StringWidth(summary)

	fill := max(model.width-width-summaryWidth-3, 1)
	return left.String() +
		ruleStyle.Render(strings.Repeat("─", fill)) +
		" " + lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(summary) + " " +
		ruleStyle.Render("─")
}

// gameSummary is "BOS 98 @ ATL 104 · Q4 2:31", or the matchup and start
// time before a snapshot has arrived.
func (model Model) gameSummary() string {
	game := model.currentGame()
	if model.snapshot == nil || model.snapshot.BoxScore == nil {
		return gameLabel(game) + " · " + model.date
	}
	boxScore := model.snapshot.BoxScore
	status := nba.StatusLabel(boxScore.Status, boxScore.Period, boxScore.Clock, game.StartTimeEastern)
	summary := fmt.Sprintf("%s %d @ %s %d",
		teamCode(&boxScore.Visitor), boxScore.Visitor.Score,
		teamCode(&boxScore.Home), boxScore.Home.Score)
	if status != "" {
		summary += " · " + status
	}
	return summary
}

func teamCode(team *nba.Team) string {
	if team.TriCode != "" {
		return team.TriCode
	}
	if code := nba.TeamTriCode(team.TeamID); code != "" {
		return code
	}
	return team.TeamID
}

func (model Model) renderGameTab(height int) string {
	boxScore := model.snapshot.BoxScore
	sections := []string{model.renderLineScore(boxScore), model.renderGameInfo(boxScore)}
	used := lipgloss.Height(sections[0]) + 1

	if model.nav.ChartVisible && height-used > chartHeight+3 {
		sections = append(sections, model.renderChart(boxScore), "")
		used += chartHeight + 2
	}

	sections = append(sections, model.renderPlays(max(height-used, 0)))
	return strings.Join(sections, "\n")
}

// renderLineScore renders the per-quarter table, visitor above home.
func (model Model) renderLineScore(boxScore *nba.BoxScore) string {
	overtime := len(boxScore.Home.Overtime) > 0 || len(boxScore.Visitor.Overtime) > 0
	headers := []string{"", "Q1", "Q2", "Q3", "Q4"}
	if overtime {
		headers = append(headers, "OT")
	}
	headers = append(headers, "T")

	teams := []*nba.Team{&boxScore.Visitor, &boxScore.Home}
	rows := make([][]string, 0, len(teams))
	for _, team := range teams {
		row := []string{fmt.Sprintf("%-3s %d-%d", teamCode(team), team.Win, team.Loss)}
		for _, points := range team.LineScore {
			row = append(row, strconv.Itoa(points))
		}
		if overtime {
			row = append(row, strconv.Itoa(team.OvertimePoints()))
		}
		row = append(row, strconv.Itoa(team.Score))
		rows = append(rows, row)
	}

	accents := []lipgloss.Color{model.theme.VisitorAccent, model.theme.HomeAccent}
	lastColumn := len(headers) - 1
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(model.theme.BorderColor)).
		BorderHeader(true).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, column int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if column > 0 {
				style = style.Align(lipgloss.Right)
			}
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(model.theme.HeaderForeground)
			case column == 0 && row < len(accents):
				return style.Foreground(accents[row])
			case column == lastColumn:
				return style.Bold(true).Foreground(model.theme.NormalText)
			default:
				return style.Foreground(model.theme.NormalText)
			}
		}).
		Render()
}

// renderGameInfo is the line under the line score: team names, status,
// playoff series, and game stats when the feed has them.
func (model Model) renderGameInfo(boxScore *nba.BoxScore) string {
	game := model.currentGame()
	parts := []string{boxScore.Visitor.Name() + " @ " + boxScore.Home.Name()}

	statusText := nba.StatusLabel(boxScore.Status, boxScore.Period, boxScore.Clock, game.StartTimeEastern)
	if statusText != "" {
		parts = append(parts, lipgloss.NewStyle().
			Bold(true).
			Foreground(model.theme.StatusColor(boxScore.Status)).
			Render(statusText))
	}
	if playoffs := boxScore.Playoffs; playoffs != nil {
		series := fmt.Sprintf("Playoffs R%d G%d", playoffs.Round, playoffs.GameInSeries)
		if playoffs.IfNecessary {
			series += "*"
		}
		series += fmt.Sprintf(" (%s %d-%d)", teamCode(&boxScore.Home), boxScore.Home.SeriesWin, boxScore.Home.SeriesLoss)
		parts = append(parts, series)
	}
	if stats := boxScore.Stats; stats != nil {
		parts = append(parts, fmt.Sprintf("Lead changes %s · Times tied %s", stats.LeadChanges, stats.TimesTied))
	}

	separator := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" · ")
	return " " + strings.Join(parts, separator)
}

func (model Model) renderChart(boxScore *nba.BoxScore) string {
	homeLegend := lipgloss.NewStyle().Foreground(model.theme.HomeAccent).Render("█ " + teamCode(&boxScore.Home))
	visitorLegend := lipgloss.NewStyle().Foreground(model.theme.VisitorAccent).Render("█ " + teamCode(&boxScore.Visitor))
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).Render("Score flow")

	chart := tui.RenderFlow(model.theme, model.bars, nba.ScoreFlow(model.snapshot.Plays), max(model.width-2, 1), chartHeight)
	indented := " " + strings.ReplaceAll(chart, "\n", "\n ")
	return " " + title + "  " + homeLegend + "  " + visitorLegend + "\n" + indented
}

// renderPlays renders the filtered play list with a scrollbar. With no
// cursor the list follows the latest play.
func (model Model) renderPlays(height int) string {
	if height <= 0 {
		return ""
	}
	total := len(model.snapshot.Plays)
	title := fmt.Sprintf("Plays (%d)", total)
	if model.filter.Input != "" {
		title = fmt.Sprintf("Plays (%d of %d)", len(model.visiblePlays), total)
	}
	lines := []string{" " + lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).Render(title)}
	listHeight := height - 1
	if listHeight <= 0 {
		return lines[0]
	}
	if len(model.visiblePlays) == 0 {
		empty := "No plays yet."
		if model.filter.Input != "" {
			empty = "No plays match."
		}
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(empty))
		return strings.Join(lines, "\n")
	}

	cursor := model.nav.Plays.Selected()
	follow := cursor
	if follow == NoSelection {
		follow = len(model.visiblePlays) - 1
	}
	viewport := tui.Viewport{Total: len(model.visiblePlays), Visible: listHeight}.Follow(follow)

	rowWidth := max(model.width-1, 1)
	now := model.clock.Now()
	var rows []string
	for row := viewport.Offset; row < viewport.End(); row++ {
		rows = append(rows, model.renderPlayRow(row, row == cursor, rowWidth, now))
	}
	for len(rows) < listHeight {
		rows = append(rows, strings.Repeat(" ", rowWidth))
	}

	list := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(rows, "\n"),
		tui.RenderScrollbar(model.theme, listHeight, viewport, model.nav.Tab == TabGame),
	)
	lines = append(lines, list)
	return strings.Join(lines, "\n")
}

func (model Model) renderPlayRow(row int, selected bool, width int, now time.Time) string {
	index := model.visiblePlays[row]
	play := model.snapshot.Plays[index]

	prefix := fmt.Sprintf(" %-3s %5s %3d-%-3d ", play.Period, play.Clock, play.VisitorScore, play.HomeScore)
	description := tui.Fit(play.Description, max(width-ansi.StringWidth(prefix), 0))

	rowStyle := lipgloss.NewStyle().Width(width).MaxWidth(width)
	base := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	switch {
	case selected:
		rowStyle = rowStyle.Background(model.theme.SelectedBackground).Foreground(model.theme.SelectedForeground)
		base = base.Background(model.theme.SelectedBackground).Foreground(model.theme.SelectedForeground)
	case model.glow.Intensity(playKey(index), now) > 0:
		tint := model.theme.PlayGlow
		if model.glow.Kind(playKey(index)) == tui.GlowScoring {
			tint = model.theme.ScoringGlow
		}
		rowStyle = rowStyle.Background(tint)
		base = base.Background(tint)
	}
	match := base.Foreground(model.theme.MatchForeground).Bold(true)

	prefixStyle := base.Foreground(model.theme.FaintText)
	if selected {
		prefixStyle = base
	}
	return rowStyle.Render(prefixStyle.Render(prefix) +
		tui.HighlightRunes(description, model.playMatches[row], base, match))
}

func (model Model) renderHelp() string {
	if model.notice != "" {
		color := model.theme.WarnText
		if model.noticeLevel >= slog.LevelError {
			color = model.theme.ErrorText
		}
		return lipgloss.NewStyle().Foreground(color).Render(" " + tui.Fit(model.notice, max(model.width-2, 0)))
	}

	help := " q quit  ←→ tabs  ↑↓ move  t chart  r refresh"
	if model.nav.Tab == TabBoxScore {
		help += "  H/L team"
	}
	if len(model.games) > 1 {
		help += "  [/] game  g games"
	}
	help += "  / filter"

	var status string
	switch {
	case model.loading:
		status = model.spinner.View() + " loading"
	case model.refresh > 0:
		remaining := max(model.nextRefresh.Sub(model.clock.Now()), 0)
		status = fmt.Sprintf("refresh %ds", int(remaining.Round(time.Second)/time.Second))
	}

	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	if status == "" {
		return style.Render(help)
	}
	gap := max(model.width-ansi.StringWidth(help)-ansi.StringWidth(status)-1, 1)
	return style.Render(help + strings.Repeat(" ", gap) + status)
}

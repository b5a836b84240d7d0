// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/nbascores/lib/clock"
	"github.com/bureau-foundation/nbascores/lib/nba"
	"github.com/bureau-foundation/nbascores/lib/nbafeed"
	"github.com/bureau-foundation/nbascores/lib/tui"
)

// DefaultTickRate is the UI tick interval when Config.TickRate is unset.
const DefaultTickRate = 250 * time.Millisecond

// Loader fetches everything shown for one game. *nbafeed.Client
// implements it.
type Loader interface {
	LoadGame(ctx context.Context, date, gameID string) (*nbafeed.GameSnapshot, error)
}

// Config holds the inputs for NewModel.
type Config struct {
	// Context bounds every load the model starts. Defaults to
	// context.Background().
	Context context.Context

	// Date is the yyyymmdd day being shown and Games its schedule
	// entries in schedule order. An empty Games shows the no-games
	// screen.
	Date  string
	Games []nba.Game

	// GameID selects the initial game; the first game when empty or
	// not in Games.
	GameID string

	// Snapshot is the already-fetched initial game. When nil the model
	// loads it from Init.
	Snapshot *nbafeed.GameSnapshot

	Loader Loader

	// EnhancedGraphics selects nine-level chart glyphs instead of
	// three-level ones.
	EnhancedGraphics bool

	// TickRate drives animation and the refresh countdown.
	TickRate time.Duration

	// Refresh reloads the current game this often. Zero disables
	// periodic refresh; r still refreshes manually.
	Refresh time.Duration

	// Clock defaults to clock.Real().
	Clock clock.Clock

	// Theme defaults to tui.DefaultTheme.
	Theme *tui.Theme
}

// tickMsg drives Model.onTick.
type tickMsg struct{}

// snapshotMsg carries the result of a load. seq identifies the load so
// results from superseded loads are dropped.
type snapshotMsg struct {
	seq      int
	gameID   string
	snapshot *nbafeed.GameSnapshot
	err      error
}

// Model is the top-level bubbletea model for the scoreboard.
type Model struct {
	ctx    context.Context
	loader Loader
	clock  clock.Clock
	theme  tui.Theme
	keys   KeyMap
	bars   tui.BarSet

	tickRate time.Duration
	refresh  time.Duration

	date      string
	games     []nba.Game
	gameIndex int

	// snapshot is nil while the selected game's first load is in
	// flight.
	snapshot *nbafeed.GameSnapshot

	nav    Navigation
	filter PlayFilter

	// visiblePlays maps rows of the play list to indexes into
	// snapshot.Plays; playMatches holds each row's highlighted runes.
	visiblePlays []int
	playMatches  [][]int

	// menu is the open game picker, or nil.
	menu *tui.Menu

	glow        *tui.GlowTracker
	loading     bool
	loadSeq     int
	cancelLoad  context.CancelFunc
	loadErr     error
	nextRefresh time.Time
	spinner     spinner.Model

	// Status bar message from the logger or a failed refresh.
	notice      string
	noticeLevel slog.Level
	noticeSeq   int

	width  int
	height int
	ready  bool
}

// NewModel creates a Model from config.
func NewModel(config Config) Model {
	ctx := config.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	theme := tui.DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}
	tickRate := config.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	model := Model{
		ctx:      ctx,
		loader:   config.Loader,
		clock:    clk,
		theme:    theme,
		keys:     DefaultKeyMap,
		bars:     tui.BarSetFor(config.EnhancedGraphics),
		tickRate: tickRate,
		refresh:  config.Refresh,
		date:     config.Date,
		games:    config.Games,
		snapshot: config.Snapshot,
		nav:      NewNavigation(0, 0),
		glow:     tui.NewGlowTracker(0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for index, game := range model.games {
		if game.GameID == config.GameID {
			model.gameIndex = index
			break
		}
	}
	if model.refresh > 0 {
		model.nextRefresh = clk.Now().Add(model.refresh)
	}
	model.rebuildPlays()
	model.resizePlayers()
	return model
}

// Init implements tea.Model. Starts the tick loop and, without an
// initial snapshot, the first load.
func (model Model) Init() tea.Cmd {
	commands := []tea.Cmd{model.scheduleTick()}
	if model.snapshot == nil && len(model.games) > 0 {
		commands = append(commands, func() tea.Msg { return loadRequestMsg{} })
	}
	return tea.Batch(commands...)
}

// loadRequestMsg asks Update to start a load. Init cannot start one
// itself because it cannot change the model.
type loadRequestMsg struct{}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case tickMsg:
		command := model.onTick()
		return model, command

	case loadRequestMsg:
		if model.loading {
			return model, nil
		}
		command := model.startLoad()
		return model, command

	case snapshotMsg:
		return model.applySnapshot(message)

	case spinner.TickMsg:
		if !model.loading {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command

	case logRecordMsg:
		command := model.setNotice(message.Summary, message.Level)
		return model, command

	case logRecordFadeMsg:
		if message.seq == model.noticeSeq {
			model.notice = ""
		}
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.menu != nil {
		return model.handleMenuKeys(message)
	}
	if model.filter.Active {
		return model.handleFilterKeys(message)
	}

	if key.Matches(message, model.keys.Quit) {
		return model, tea.Quit
	}
	if len(model.games) == 0 {
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.NextTab):
		model.nav.AdvanceTab()

	case key.Matches(message, model.keys.PreviousTab):
		model.nav.RetreatTab()

	case key.Matches(message, model.keys.NextTeam, model.keys.PreviousTeam):
		if model.nav.AdvanceTeam() {
			model.resizePlayers()
		}

	case key.Matches(message, model.keys.Down):
		model.nav.CursorNext()

	case key.Matches(message, model.keys.Up):
		model.nav.CursorPrevious()

	case key.Matches(message, model.keys.ToggleChart):
		model.nav.ToggleChart()

	case key.Matches(message, model.keys.Refresh):
		if !model.loading {
			command := model.startLoad()
			return model, command
		}

	case key.Matches(message, model.keys.NextGame):
		command := model.switchGame(model.gameIndex + 1)
		return model, command

	case key.Matches(message, model.keys.PreviousGame):
		command := model.switchGame(model.gameIndex - 1)
		return model, command

	case key.Matches(message, model.keys.PickGame):
		model.openGameMenu()

	case key.Matches(message, model.keys.FilterActivate):
		model.nav.Tab = TabGame
		model.filter.Active = true
		model.nav.Plays.Unselect()

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.rebuildPlays()
			model.nav.Plays.Unselect()
		}
	}
	return model, nil
}

func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.rebuildPlays()
		} else {
			model.filter.Active = false
		}

	case message.Type == tea.KeyEnter:
		model.filter.Active = false

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.rebuildPlays()
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		if message.Type == tea.KeySpace && len(message.Runes) == 0 {
			model.filter.HandleRune(' ')
		}
		model.rebuildPlays()
	}
	model.nav.Plays.Unselect()
	return model, nil
}

func (model Model) handleMenuKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.menu.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.menu.MoveDown()

	case key.Matches(message, model.keys.Confirm):
		cursor := model.menu.Cursor
		model.menu = nil
		if cursor != model.gameIndex {
			command := model.switchGame(cursor)
			return model, command
		}

	case key.Matches(message, model.keys.FilterClear, model.keys.PickGame, model.keys.Quit):
		model.menu = nil
	}
	return model, nil
}

func (model *Model) openGameMenu() {
	options := make([]tui.MenuOption, len(model.games))
	for index, game := range model.games {
		options[index] = tui.MenuOption{Label: gameLabel(game), Value: game.GameID}
	}
	model.menu = tui.NewMenu(model.date, options, model.currentGame().GameID)
}

// switchGame selects the game at index, wrapping, and starts loading
// it. The old snapshot is dropped so the view never shows one game's
// plays under another's header.
func (model *Model) switchGame(index int) tea.Cmd {
	count := len(model.games)
	if count < 2 {
		return nil
	}
	index = ((index % count) + count) % count
	if index == model.gameIndex {
		return nil
	}
	model.gameIndex = index
	model.snapshot = nil
	model.rebuildPlays()
	model.resizePlayers()
	return model.startLoad()
}

func (model *Model) currentGame() nba.Game {
	if model.gameIndex < 0 || model.gameIndex >= len(model.games) {
		return nba.Game{}
	}
	return model.games[model.gameIndex]
}

// startLoad begins loading the current game. Any load still in flight
// is superseded and cancelled.
func (model *Model) startLoad() tea.Cmd {
	if model.loader == nil || len(model.games) == 0 {
		return nil
	}
	if model.cancelLoad != nil {
		model.cancelLoad()
	}
	loadCtx, cancel := context.WithCancel(model.ctx)
	model.cancelLoad = cancel
	model.loadSeq++
	model.loading = true
	model.loadErr = nil

	game := model.currentGame()
	date := game.StartDateEastern
	if date == "" {
		date = model.date
	}
	seq, loader := model.loadSeq, model.loader
	load := func() tea.Msg {
		snapshot, err := loader.LoadGame(loadCtx, date, game.GameID)
		return snapshotMsg{seq: seq, gameID: game.GameID, snapshot: snapshot, err: err}
	}
	return tea.Batch(load, model.spinner.Tick)
}

func (model Model) applySnapshot(message snapshotMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.loadSeq {
		return model, nil
	}
	now := model.clock.Now()
	model.loading = false
	if model.cancelLoad != nil {
		model.cancelLoad()
		model.cancelLoad = nil
	}
	if model.refresh > 0 {
		model.nextRefresh = now.Add(model.refresh)
	}
	if message.err != nil {
		if model.snapshot == nil {
			model.loadErr = message.err
		}
		command := model.setNotice("refresh failed: "+message.err.Error(), slog.LevelError)
		return model, command
	}

	previous := model.snapshot
	model.snapshot = message.snapshot
	if previous != nil && previous.GameID == message.gameID {
		if message.snapshot.Unchanged(previous) {
			return model, nil
		}
		model.igniteNewPlays(previous.Plays, message.snapshot.Plays, now)
	} else {
		model.glow.Reset()
		model.nav.Plays.Unselect()
		model.nav.Players.Unselect()
	}
	model.rebuildPlays()
	model.resizePlayers()
	return model, nil
}

// igniteNewPlays lights up plays appended since the previous snapshot.
// A play that moved either score glows as scoring.
func (model *Model) igniteNewPlays(previous, current []nba.Play, now time.Time) {
	for index := len(previous); index < len(current); index++ {
		kind := tui.GlowPlay
		homeBefore, visitorBefore := 0, 0
		if index > 0 {
			homeBefore, visitorBefore = current[index-1].HomeScore, current[index-1].VisitorScore
		}
		if current[index].HomeScore != homeBefore || current[index].VisitorScore != visitorBefore {
			kind = tui.GlowScoring
		}
		model.glow.Ignite(playKey(index), kind, now)
	}
}

func playKey(index int) string {
	return strconv.Itoa(index)
}

// onTick advances the glow animation and fires the periodic refresh
// when it is due. The next tick is always scheduled.
func (model *Model) onTick() tea.Cmd {
	now := model.clock.Now()
	model.glow.Sweep(now)

	commands := []tea.Cmd{model.scheduleTick()}
	if model.refresh > 0 && !model.loading && len(model.games) > 0 && !now.Before(model.nextRefresh) {
		commands = append(commands, model.startLoad())
	}
	return tea.Batch(commands...)
}

func (model Model) scheduleTick() tea.Cmd {
	return tea.Tick(model.tickRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// rebuildPlays reapplies the filter to the current plays.
func (model *Model) rebuildPlays() {
	var plays []nba.Play
	if model.snapshot != nil {
		plays = model.snapshot.Plays
	}
	model.visiblePlays, model.playMatches = model.filter.Apply(plays)
	model.nav.Plays.Resize(len(model.visiblePlays))
}

// resizePlayers fits the player cursor to the team on show.
func (model *Model) resizePlayers() {
	model.nav.Players.Resize(len(model.teamPlayers()))
}

// teamPlayers returns the players of the team selected on the
// Boxscore tab.
func (model *Model) teamPlayers() []nba.Player {
	if model.snapshot == nil || model.snapshot.BoxScore == nil {
		return nil
	}
	boxScore := model.snapshot.BoxScore
	return boxScore.TeamPlayers(model.selectedTeam().TeamID)
}

func (model *Model) selectedTeam() *nba.Team {
	boxScore := model.snapshot.BoxScore
	if model.nav.Team == Visitor {
		return &boxScore.Visitor
	}
	return &boxScore.Home
}

func (model *Model) setNotice(text string, level slog.Level) tea.Cmd {
	model.noticeSeq++
	model.notice = text
	model.noticeLevel = level
	seq := model.noticeSeq
	return tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
		return logRecordFadeMsg{seq: seq}
	})
}

// gameLabel is "BOS @ ATL", falling back to team ids when the URL code
// is missing.
func gameLabel(game nba.Game) string {
	visitor, home := game.TriCodes()
	if visitor == "" {
		visitor = nba.TeamTriCode(game.Visitor.TeamID)
		home = nba.TeamTriCode(game.Home.TeamID)
	}
	return fmt.Sprintf("%s @ %s", visitor, home)
}

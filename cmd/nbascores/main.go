// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// nbascores is a terminal scoreboard for one day of NBA games. It
// fetches the day's schedule, opens the first game (or --game), and
// shows its line score, score flow, and play-by-play on the Game tab
// and each team's box score on the Boxscore tab.
//
// Feeds come from the public data.nba.com JSON endpoints, or from a
// directory of saved feeds with --feed-dir. Fetched bodies are cached
// in memory, or in Redis with --redis-url so several terminals share
// one upstream fetch.
//
// Everything needed for the first screen is fetched before the
// terminal is switched to the alternate screen, so a bad date or an
// unreachable feed prints a plain error and exits non-zero.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/bureau-foundation/nbascores/cmd/nbascores/cli"
	"github.com/bureau-foundation/nbascores/lib/nbafeed"
	"github.com/bureau-foundation/nbascores/lib/scoreui"
	"github.com/bureau-foundation/nbascores/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "nbascores: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, flagSet, err := parseOptions(args, time.Now())
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Printf("nbascores %s\n", version.Full())
		return nil
	}
	if opts.showHelp {
		printHelp(flagSet)
		return nil
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, flagSet, opts)
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration: %w", err)
	}
	level, err := cli.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cli.Validation("%w", err)
	}
	applyColor(cfg.UI.Color)

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	// Until the dashboard starts, records go to stderr. Afterwards
	// warnings reach the status bar and everything reaches the log
	// file, if any.
	stderrHandler := newMutableHandler(cli.NewCommandLogger(level).Handler())
	tuiHandler := scoreui.NewTUILogHandler(slog.LevelWarn)
	handlers := fanoutHandler{stderrHandler, tuiHandler}
	if cfg.Log.Output != "" {
		fileHandler, closeFile, err := openFileLogHandler(cfg.Log.Output, level)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.Log.Output, err)
		}
		defer closeFile()
		handlers = append(handlers, fileHandler)
	}
	logger := slog.New(handlers)

	fetcher, closeFetcher, err := newFetcher(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFetcher()

	client, err := nbafeed.NewClient(nbafeed.Config{
		Fetcher: fetcher,
		Season:  cfg.Feed.Season,
		Logger:  logger,
	})
	if err != nil {
		return cli.Internal("%w", err)
	}

	games, snapshot, err := loadInitial(ctx, client, opts.date, opts.gameID)
	if err != nil {
		return err
	}
	logger.Debug("initial load complete", "date", opts.date, "games", len(games))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.Validation("stdout is not a terminal").
			WithHint("nbascores draws a full-screen dashboard; run it in an interactive terminal.")
	}

	var initialGame string
	if snapshot != nil {
		initialGame = snapshot.GameID
	}
	model := scoreui.NewModel(scoreui.Config{
		Context:          ctx,
		Date:             opts.date,
		Games:            games,
		GameID:           initialGame,
		Snapshot:         snapshot,
		Loader:           client,
		EnhancedGraphics: cfg.UI.EnhancedGraphics,
		TickRate:         cfg.UI.TickRate,
		Refresh:          cfg.UI.Refresh,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	tuiHandler.SetProgram(program)
	stderrHandler.muted.Store(true)
	defer stderrHandler.muted.Store(false)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return cli.Internal("running dashboard: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `nbascores: NBA scores in the terminal.

Shows one day's games: the line score, score flow, and play-by-play of
the selected game, and each team's box score.

Usage:
  nbascores [flags]

Examples:
  # Today's games
  nbascores

  # A past date, refreshed every 20 seconds
  nbascores -d 20210412 --refresh 20s

  # Saved feeds, no network
  nbascores -d 20210412 --feed-dir ./feeds

Keys:
  h/l, ←/→      previous/next tab
  j/k, ↓/↑      move the cursor
  H/L           switch team (Boxscore tab)
  [ ]           previous/next game     g  pick a game
  t             toggle the chart       r  refresh now
  /             filter plays           esc  clear the filter
  q             quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

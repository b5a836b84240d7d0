// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/nbascores/cmd/nbascores/cli"
	"github.com/bureau-foundation/nbascores/lib/config"
	"github.com/bureau-foundation/nbascores/lib/feedcache"
	"github.com/bureau-foundation/nbascores/lib/nba"
	"github.com/bureau-foundation/nbascores/lib/nbafeed"
)

// newFetcher builds the feed source cfg describes: a directory in
// offline mode, otherwise the HTTP feed with an in-memory or Redis
// cache. The returned function releases the cache connection.
func newFetcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (nbafeed.Fetcher, func(), error) {
	if cfg.Feed.Dir != "" {
		fetcher, err := nbafeed.NewDirFetcher(cfg.Feed.Dir, nil)
		if err != nil {
			return nil, nil, cli.Validation("%w", err).
				WithHint("--feed-dir must name a directory holding schedule.json and the game feeds.")
		}
		logger.Debug("reading feeds from directory", "dir", cfg.Feed.Dir)
		return fetcher, func() {}, nil
	}

	httpConfig := nbafeed.HTTPConfig{
		BaseURL:   cfg.Feed.BaseURL,
		Timeout:   cfg.Feed.Timeout,
		UserAgent: cfg.Feed.UserAgent,
		Referer:   cfg.Feed.Referer,
		Attempts:  cfg.Feed.Retry.Attempts,
		BaseDelay: cfg.Feed.Retry.BaseDelay,
		Logger:    logger,
	}
	cleanup := func() {}
	if cfg.Cache.RedisURL != "" {
		client, err := feedcache.DialRedis(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, nil, cli.Transient("connecting to feed cache: %w", err).
				WithHint("Check --redis-url, or omit it to cache in memory.")
		}
		httpConfig.Cache = feedcache.NewRedisStore(client, cfg.Cache.TTL, logger)
		cleanup = func() { client.Close() }
		logger.Debug("sharing feed cache through redis", "ttl", cfg.Cache.TTL)
	}

	fetcher, err := nbafeed.NewHTTPFetcher(httpConfig)
	if err != nil {
		cleanup()
		return nil, nil, cli.Validation("%w", err)
	}
	return fetcher, cleanup, nil
}

// loadInitial fetches the day's games and the snapshot of the game to
// open first. No games is not an error: both results are empty.
func loadInitial(ctx context.Context, client *nbafeed.Client, date, gameID string) ([]nba.Game, *nbafeed.GameSnapshot, error) {
	games, err := client.GamesOn(ctx, date)
	if err != nil {
		return nil, nil, cli.Classify(err)
	}
	if len(games) == 0 {
		if gameID != "" {
			return nil, nil, cli.NotFound("no games are scheduled on %s", date).
				WithHint("Pick another date with -d.")
		}
		return nil, nil, nil
	}

	index := 0
	if gameID != "" {
		index = -1
		for candidate, game := range games {
			if game.GameID == gameID {
				index = candidate
				break
			}
		}
		if index < 0 {
			return nil, nil, cli.NotFound("game %s is not scheduled on %s", gameID, date).
				WithHint("Omit --game to open the first game of the day.")
		}
	}

	game := games[index]
	gameDate := game.StartDateEastern
	if gameDate == "" {
		gameDate = date
	}
	snapshot, err := client.LoadGame(ctx, gameDate, game.GameID)
	if err != nil {
		return nil, nil, cli.Classify(err)
	}
	return games, snapshot, nil
}

// applyColor forces lipgloss's color profile for "always" and "never";
// "auto" keeps the detected one.
func applyColor(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
	}
}

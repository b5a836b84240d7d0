// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbafeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/bureau-foundation/nbascores/lib/feedcache"
	"github.com/bureau-foundation/nbascores/lib/nba"
)

// Config holds configuration for a Client.
type Config struct {
	// Fetcher retrieves raw documents. Required.
	Fetcher Fetcher

	// Season overrides the season used for the schedule and players
	// feeds. Empty derives it from the requested date.
	Season string

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client fetches and decodes feeds. It is safe for concurrent use.
type Client struct {
	fetcher Fetcher
	season  string
	logger  *slog.Logger

	rosterMu     sync.Mutex
	roster       *nba.Roster
	rosterSeason string
	rosterGroup  singleflight.Group
}

// NewClient creates a Client.
func NewClient(config Config) (*Client, error) {
	if config.Fetcher == nil {
		return nil, fmt.Errorf("nbafeed: Fetcher is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		fetcher: config.Fetcher,
		season:  config.Season,
		logger:  logger,
	}, nil
}

// SeasonFor returns the season used for date: the configured override
// or the season derived from the date.
func (client *Client) SeasonFor(date string) (string, error) {
	if client.season != "" {
		return client.season, nil
	}
	return SeasonForDate(date)
}

// Schedule fetches and decodes the schedule of the season containing
// date.
func (client *Client) Schedule(ctx context.Context, date string) (*nba.Schedule, error) {
	season, err := client.SeasonFor(date)
	if err != nil {
		return nil, err
	}
	payload, err := client.fetcher.Fetch(ctx, ScheduleResource(season))
	if err != nil {
		return nil, err
	}
	schedule, err := nba.DecodeSchedule(payload.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", payload.Location, err)
	}
	return schedule, nil
}

// GamesOn returns the schedule entries for date in schedule order.
func (client *Client) GamesOn(ctx context.Context, date string) ([]nba.Game, error) {
	schedule, err := client.Schedule(ctx, date)
	if err != nil {
		return nil, err
	}
	ids := schedule.GamesOnDate(date)
	games := make([]nba.Game, 0, len(ids))
	for _, id := range ids {
		game, _ := schedule.Game(id)
		games = append(games, game)
	}
	return games, nil
}

// BoxScore fetches and decodes one game's box score, consulting the
// roster when the game has no stats yet.
func (client *Client) BoxScore(ctx context.Context, date, gameID string) (*nba.BoxScore, error) {
	boxScore, _, err := client.boxScore(ctx, date, gameID)
	return boxScore, err
}

func (client *Client) boxScore(ctx context.Context, date, gameID string) (*nba.BoxScore, feedcache.Digest, error) {
	payload, err := client.fetcher.Fetch(ctx, BoxScoreResource(date, gameID))
	if err != nil {
		return nil, feedcache.Digest{}, err
	}
	roster := nba.RosterLookupFunc(func(ctx context.Context, teamID string) ([]nba.Player, error) {
		return client.playersForTeam(ctx, date, teamID)
	})
	boxScore, err := nba.DecodeBoxScore(ctx, payload.Body, roster)
	if err != nil {
		return nil, feedcache.Digest{}, fmt.Errorf("%s: %w", payload.Location, err)
	}
	return boxScore, payload.Digest, nil
}

// PlayByPlay fetches and decodes one game's plays.
func (client *Client) PlayByPlay(ctx context.Context, date, gameID string) ([]nba.Play, error) {
	plays, _, err := client.playByPlay(ctx, date, gameID)
	return plays, err
}

func (client *Client) playByPlay(ctx context.Context, date, gameID string) ([]nba.Play, feedcache.Digest, error) {
	payload, err := client.fetcher.Fetch(ctx, PlayByPlayResource(date, gameID))
	if err != nil {
		return nil, feedcache.Digest{}, err
	}
	plays, err := nba.DecodePlayByPlay(payload.Body)
	if err != nil {
		return nil, feedcache.Digest{}, fmt.Errorf("%s: %w", payload.Location, err)
	}
	return plays, payload.Digest, nil
}

// PlayersForTeam returns teamID's players from the roster of the
// configured season, or of the season last loaded when none is
// configured. With the Client this satisfies nba.RosterLookup.
func (client *Client) PlayersForTeam(ctx context.Context, teamID string) ([]nba.Player, error) {
	season := client.season
	if season == "" {
		client.rosterMu.Lock()
		season = client.rosterSeason
		client.rosterMu.Unlock()
	}
	if season == "" {
		return nil, fmt.Errorf("nbafeed: no season configured and no roster loaded")
	}
	roster, err := client.loadRoster(ctx, season)
	if err != nil {
		return nil, err
	}
	return roster.PlayersForTeam(ctx, teamID)
}

func (client *Client) playersForTeam(ctx context.Context, date, teamID string) ([]nba.Player, error) {
	season, err := client.SeasonFor(date)
	if err != nil {
		return nil, err
	}
	roster, err := client.loadRoster(ctx, season)
	if err != nil {
		return nil, err
	}
	return roster.PlayersForTeam(ctx, teamID)
}

// loadRoster returns the season's roster, fetching it on first use. The
// decoded roster is kept for the life of the Client. Concurrent first
// callers share one fetch, which runs detached from any one caller's
// cancellation; each caller stops waiting when its own ctx is done.
func (client *Client) loadRoster(ctx context.Context, season string) (*nba.Roster, error) {
	client.rosterMu.Lock()
	if client.roster != nil && client.rosterSeason == season {
		roster := client.roster
		client.rosterMu.Unlock()
		return roster, nil
	}
	client.rosterMu.Unlock()

	fetchCtx := context.WithoutCancel(ctx)
	results := client.rosterGroup.DoChan(season, func() (any, error) {
		client.logger.Info("fetching league roster", "season", season)
		payload, err := client.fetcher.Fetch(fetchCtx, PlayersResource(season))
		if err != nil {
			return nil, err
		}
		roster, err := nba.DecodeRoster(payload.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", payload.Location, err)
		}
		client.rosterMu.Lock()
		client.roster = roster
		client.rosterSeason = season
		client.rosterMu.Unlock()
		return roster, nil
	})
	select {
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*nba.Roster), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GameSnapshot is everything the dashboard shows for one game, fetched
// together.
type GameSnapshot struct {
	GameID   string
	Date     string
	BoxScore *nba.BoxScore
	Plays    []nba.Play

	BoxScoreDigest   feedcache.Digest
	PlayByPlayDigest feedcache.Digest
}

// Unchanged reports whether both feeds are byte-identical to previous.
func (snapshot *GameSnapshot) Unchanged(previous *GameSnapshot) bool {
	return previous != nil &&
		previous.GameID == snapshot.GameID &&
		previous.BoxScoreDigest == snapshot.BoxScoreDigest &&
		previous.PlayByPlayDigest == snapshot.PlayByPlayDigest
}

// LoadGame fetches a game's box score and play-by-play concurrently.
// Either failure fails the load; no partial snapshot is returned.
func (client *Client) LoadGame(ctx context.Context, date, gameID string) (*GameSnapshot, error) {
	snapshot := &GameSnapshot{GameID: gameID, Date: date}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		boxScore, digest, err := client.boxScore(groupCtx, date, gameID)
		snapshot.BoxScore, snapshot.BoxScoreDigest = boxScore, digest
		return err
	})
	group.Go(func() error {
		plays, digest, err := client.playByPlay(groupCtx, date, gameID)
		snapshot.Plays, snapshot.PlayByPlayDigest = plays, digest
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

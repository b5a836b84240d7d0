// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"context"
	"fmt"
)

// PlayerSource records where a box score's player list came from.
type PlayerSource int

const (
	// SourceStats means the payload carried a stats block with
	// per-player lines.
	SourceStats PlayerSource = iota

	// SourceRoster means the payload had no stats block and the
	// players were filled in from the roster, statistics absent.
	SourceRoster
)

func (s PlayerSource) String() string {
	if s == SourceRoster {
		return "roster"
	}
	return "stats"
}

// RosterLookup resolves a team id to its players. [DecodeBoxScore]
// consults it only when the payload has no stats block.
type RosterLookup interface {
	PlayersForTeam(ctx context.Context, teamID string) ([]Player, error)
}

// RosterLookupFunc adapts a function to [RosterLookup].
type RosterLookupFunc func(ctx context.Context, teamID string) ([]Player, error)

func (f RosterLookupFunc) PlayersForTeam(ctx context.Context, teamID string) ([]Player, error) {
	return f(ctx, teamID)
}

// BoxScore is a decoded per-game box score.
type BoxScore struct {
	GameID string
	Date   string
	Status GameStatus
	Clock  string
	Period GamePeriod

	Playoffs *Playoffs

	Home    Team
	Visitor Team

	// Players lists the home team's players before the visitor's when
	// Source is SourceRoster; otherwise it is the feed's order.
	Players []Player
	Source  PlayerSource

	// Stats is nil when Source is SourceRoster.
	Stats *GameStats
}

// GameStats holds game-level figures from the stats block.
type GameStats struct {
	TimesTied   Stat
	LeadChanges Stat
}

// TeamPlayers returns the players belonging to teamID, in list order.
func (b *BoxScore) TeamPlayers(teamID string) []Player {
	var players []Player
	for _, player := range b.Players {
		if player.TeamID == teamID {
			players = append(players, player)
		}
	}
	return players
}

// StatusLabel summarises the game's progress for display.
func (b *BoxScore) StatusLabel() string {
	return StatusLabel(b.Status, b.Period, b.Clock, "")
}

type wireBoxScore struct {
	BasicGameData *wireBasicGameData `json:"basicGameData"`
	Stats         *wireGameStats     `json:"stats"`
}

type wireBasicGameData struct {
	GameID           string          `json:"gameId"`
	StartDateEastern string          `json:"startDateEastern"`
	StatusNum        flexInt         `json:"statusNum"`
	Clock            string          `json:"clock"`
	Period           *wireGamePeriod `json:"period"`
	Playoffs         *wirePlayoffs   `json:"playoffs"`
	HTeam            *wireTeam       `json:"hTeam"`
	VTeam            *wireTeam       `json:"vTeam"`
}

type wireGameStats struct {
	TimesTied     Stat          `json:"timesTied"`
	LeadChanges   Stat          `json:"leadChanges"`
	HTeam         wireTeamStats `json:"hTeam"`
	VTeam         wireTeamStats `json:"vTeam"`
	ActivePlayers []wirePlayer  `json:"activePlayers"`
}

// DecodeBoxScore decodes a box-score payload. When the payload has no
// stats block, roster supplies the players: the home team's first,
// then the visitor's. A roster failure fails the decode; there is no
// partial player list.
func DecodeBoxScore(ctx context.Context, data []byte, roster RosterLookup) (*BoxScore, error) {
	var wire wireBoxScore
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, malformed(FeedBoxScore, err)
	}

	basic := wire.BasicGameData
	switch {
	case basic == nil:
		return nil, missingField(FeedBoxScore, "basicGameData")
	case basic.Period == nil:
		return nil, missingField(FeedBoxScore, "basicGameData.period")
	case basic.HTeam == nil:
		return nil, missingField(FeedBoxScore, "basicGameData.hTeam")
	case basic.VTeam == nil:
		return nil, missingField(FeedBoxScore, "basicGameData.vTeam")
	case basic.HTeam.TeamID == "":
		return nil, missingField(FeedBoxScore, "basicGameData.hTeam.teamId")
	case basic.VTeam.TeamID == "":
		return nil, missingField(FeedBoxScore, "basicGameData.vTeam.teamId")
	}

	boxScore := &BoxScore{
		GameID:   basic.GameID,
		Date:     basic.StartDateEastern,
		Status:   gameStatus(int(basic.StatusNum)),
		Clock:    basic.Clock,
		Period:   basic.Period.decode(),
		Playoffs: basic.Playoffs.decode(),
		Home:     basic.HTeam.decode(),
		Visitor:  basic.VTeam.decode(),
	}

	if stats := wire.Stats; stats != nil {
		boxScore.Source = SourceStats
		boxScore.Stats = &GameStats{
			TimesTied:   stats.TimesTied,
			LeadChanges: stats.LeadChanges,
		}
		stats.HTeam.applyTo(&boxScore.Home)
		stats.VTeam.applyTo(&boxScore.Visitor)
		boxScore.Players = make([]Player, 0, len(stats.ActivePlayers))
		for index := range stats.ActivePlayers {
			boxScore.Players = append(boxScore.Players, stats.ActivePlayers[index].decode())
		}
		return boxScore, nil
	}

	if roster == nil {
		return nil, &DecodeError{Feed: FeedBoxScore, Field: "stats", Err: fmt.Errorf("no stats block and no roster lookup configured")}
	}
	boxScore.Source = SourceRoster
	for _, teamID := range []string{boxScore.Home.TeamID, boxScore.Visitor.TeamID} {
		players, err := roster.PlayersForTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("looking up roster for team %s: %w", teamID, err)
		}
		boxScore.Players = append(boxScore.Players, players...)
	}
	return boxScore, nil
}

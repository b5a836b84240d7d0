// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import "context"

// Roster is the decoded league-wide players feed.
type Roster struct {
	players []Player
	byTeam  map[string][]int
}

type wireRoster struct {
	League *struct {
		Standard *[]wireRosterPlayer `json:"standard"`
	} `json:"league"`
}

type wireRosterPlayer struct {
	PersonID  string    `json:"personId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	TeamID    string    `json:"teamId"`
	Jersey    string    `json:"jersey"`
	Pos       string    `json:"pos"`
	IsActive  *flexBool `json:"isActive"`
}

// DecodeRoster decodes the league players feed. Players the feed marks
// inactive are dropped; players without an isActive field are kept.
func DecodeRoster(data []byte) (*Roster, error) {
	var wire wireRoster
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, malformed(FeedPlayers, err)
	}
	if wire.League == nil {
		return nil, missingField(FeedPlayers, "league")
	}
	if wire.League.Standard == nil {
		return nil, missingField(FeedPlayers, "league.standard")
	}

	entries := *wire.League.Standard
	roster := &Roster{
		players: make([]Player, 0, len(entries)),
		byTeam:  make(map[string][]int),
	}
	for _, entry := range entries {
		if entry.IsActive != nil && !bool(*entry.IsActive) {
			continue
		}
		roster.byTeam[entry.TeamID] = append(roster.byTeam[entry.TeamID], len(roster.players))
		roster.players = append(roster.players, Player{
			PersonID:  entry.PersonID,
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			TeamID:    entry.TeamID,
			Jersey:    entry.Jersey,
			Position:  entry.Pos,
		})
	}
	return roster, nil
}

// PlayersForTeam returns the roster's players on teamID in feed order,
// with every statistic absent. The context is unused; the method lets
// a decoded Roster serve directly as a [RosterLookup].
func (r *Roster) PlayersForTeam(_ context.Context, teamID string) ([]Player, error) {
	indexes := r.byTeam[teamID]
	players := make([]Player, 0, len(indexes))
	for _, index := range indexes {
		players = append(players, r.players[index])
	}
	return players, nil
}

// Len returns the number of players on the roster.
func (r *Roster) Len() int {
	return len(r.players)
}

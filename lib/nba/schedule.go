// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"strings"
	"time"
)

// Schedule is the decoded season schedule.
type Schedule struct {
	games  []Game
	byDate map[string][]string
	byID   map[string]int
}

// Game is one schedule entry.
type Game struct {
	GameID string

	// StartDateEastern is the game's date in US Eastern time, as
	// yyyymmdd. Box-score and play-by-play URLs are keyed by it.
	StartDateEastern string
	StartTimeEastern string
	StartTimeUTC     string

	// URLCode is "yyyymmdd/VISHOM", the visitor tri-code followed by
	// the home tri-code.
	URLCode string

	Status   GameStatus
	Period   GamePeriod
	Playoffs *Playoffs

	Home    ScheduleTeam
	Visitor ScheduleTeam
}

// ScheduleTeam is one side of a schedule entry.
type ScheduleTeam struct {
	TeamID string
	Win    int
	Loss   int
	Score  int
}

// TriCodes returns the visitor and home tri-codes from the game's URL
// code, or empty strings when the code is missing or malformed.
func (g *Game) TriCodes() (visitor, home string) {
	_, codes, found := strings.Cut(g.URLCode, "/")
	if !found || len(codes) != 6 {
		return "", ""
	}
	return codes[:3], codes[3:]
}

// StartTime parses StartTimeUTC. The zero time and false are returned
// when the feed left it empty or malformed.
func (g *Game) StartTime() (time.Time, bool) {
	parsed, err := time.Parse(time.RFC3339, g.StartTimeUTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

type wireSchedule struct {
	League *struct {
		Standard *[]wireScheduleGame `json:"standard"`
	} `json:"league"`
}

type wireScheduleGame struct {
	GameID           string           `json:"gameId"`
	StartDateEastern string           `json:"startDateEastern"`
	StartTimeEastern string           `json:"startTimeEastern"`
	StartTimeUTC     string           `json:"startTimeUTC"`
	GameURLCode      string           `json:"gameUrlCode"`
	StatusNum        flexInt          `json:"statusNum"`
	Period           wireGamePeriod   `json:"period"`
	Playoffs         *wirePlayoffs    `json:"playoffs"`
	HTeam            wireScheduleTeam `json:"hTeam"`
	VTeam            wireScheduleTeam `json:"vTeam"`
}

type wireScheduleTeam struct {
	TeamID string  `json:"teamId"`
	Score  flexInt `json:"score"`
	Win    flexInt `json:"win"`
	Loss   flexInt `json:"loss"`
}

func (w wireScheduleTeam) decode() ScheduleTeam {
	return ScheduleTeam{
		TeamID: w.TeamID,
		Win:    int(w.Win),
		Loss:   int(w.Loss),
		Score:  int(w.Score),
	}
}

// DecodeSchedule decodes the season schedule feed. The payload must
// carry a league object with a standard array; anything else is a
// [*DecodeError].
func DecodeSchedule(data []byte) (*Schedule, error) {
	var wire wireSchedule
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, malformed(FeedSchedule, err)
	}
	if wire.League == nil {
		return nil, missingField(FeedSchedule, "league")
	}
	if wire.League.Standard == nil {
		return nil, missingField(FeedSchedule, "league.standard")
	}

	entries := *wire.League.Standard
	schedule := &Schedule{
		games:  make([]Game, 0, len(entries)),
		byDate: make(map[string][]string),
		byID:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		game := Game{
			GameID:           entry.GameID,
			StartDateEastern: entry.StartDateEastern,
			StartTimeEastern: entry.StartTimeEastern,
			StartTimeUTC:     entry.StartTimeUTC,
			URLCode:          entry.GameURLCode,
			Status:           gameStatus(int(entry.StatusNum)),
			Period:           entry.Period.decode(),
			Playoffs:         entry.Playoffs.decode(),
			Home:             entry.HTeam.decode(),
			Visitor:          entry.VTeam.decode(),
		}
		schedule.byID[game.GameID] = len(schedule.games)
		schedule.games = append(schedule.games, game)
		schedule.byDate[game.StartDateEastern] = append(schedule.byDate[game.StartDateEastern], game.GameID)
	}
	return schedule, nil
}

// GamesOnDate returns the ids of every game whose Eastern start date
// equals date, in feed order. The result is empty, never nil, when no
// game matches. Callers own the returned slice.
func (s *Schedule) GamesOnDate(date string) []string {
	ids := s.byDate[date]
	result := make([]string, len(ids))
	copy(result, ids)
	return result
}

// Game returns the schedule entry for gameID.
func (s *Schedule) Game(gameID string) (Game, bool) {
	index, ok := s.byID[gameID]
	if !ok {
		return Game{}, false
	}
	return s.games[index], true
}

// Len returns the number of games in the schedule.
func (s *Schedule) Len() int {
	return len(s.games)
}

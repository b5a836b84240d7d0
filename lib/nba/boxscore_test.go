// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
)

const boxScoreWithStats = `{
  "basicGameData": {
    "gameId": "0022000780", "startDateEastern": "20210412", "statusNum": 2,
    "clock": "5:32",
    "period": {"current": 3, "type": 0, "maxRegular": 4, "isHalftime": false, "isEndOfPeriod": false},
    "vTeam": {"teamId": "1610612737", "triCode": "ATL", "win": "29", "loss": "27", "score": "70",
              "linescore": [{"score": "25"}, {"score": "30"}, {"score": "15"}]},
    "hTeam": {"teamId": "1610612738", "triCode": "BOS", "win": "30", "loss": "28", "score": "75",
              "linescore": [{"score": "20"}, {"score": "33"}, {"score": "22"}]}
  },
  "stats": {
    "timesTied": "4", "leadChanges": "7",
    "vTeam": {"longestRun": "9", "biggestLead": "8",
              "totals": {"points": "70", "fgm": "27", "fga": "60", "fgp": "45.0", "totReb": "30", "assists": "16"},
              "leaders": {"points": {"value": "21", "players": [{"personId": "1629027", "firstName": "Trae", "lastName": "Young"}]},
                          "rebounds": {"value": "9", "players": [{"personId": "1626167", "firstName": "Clint", "lastName": "Capela"}]},
                          "assists": {"value": "8", "players": [{"personId": "1629027", "firstName": "Trae", "lastName": "Young"}]}}},
    "hTeam": {"longestRun": "11", "biggestLead": "10"},
    "activePlayers": [
      {"personId": "1628369", "firstName": "Jayson", "lastName": "Tatum", "teamId": "1610612738",
       "isOnCourt": true, "pos": "F", "min": "28:14", "points": "24", "totReb": "7", "assists": "3",
       "fgm": "9", "fga": "17", "fgp": "52.9", "plusMinus": "+6"},
      {"personId": "1629027", "firstName": "Trae", "lastName": "Young", "teamId": "1610612737",
       "isOnCourt": false, "pos": "G", "min": "26:40", "points": 21, "totReb": "", "assists": "8"},
      {"personId": "1630202", "firstName": "Payton", "lastName": "Pritchard", "teamId": "1610612738",
       "pos": "G", "min": "", "points": "", "dnp": "DNP - Coach's Decision"}
    ]
  }
}`

const boxScoreWithoutStats = `{
  "basicGameData": {
    "gameId": "0022000790", "startDateEastern": "20210413", "statusNum": 1, "clock": "",
    "period": {"current": 0, "type": 0, "maxRegular": 4},
    "vTeam": {"teamId": "1610612738", "triCode": "BOS", "win": "30", "loss": "28", "score": "", "linescore": []},
    "hTeam": {"teamId": "1610612737", "triCode": "ATL", "win": "29", "loss": "27", "score": "", "linescore": []}
  }
}`

// recordingRoster returns fixed players per team and records every
// lookup in order.
type recordingRoster struct {
	players map[string][]Player
	calls   []string
	err     error
}

func (r *recordingRoster) PlayersForTeam(_ context.Context, teamID string) ([]Player, error) {
	r.calls = append(r.calls, teamID)
	if r.err != nil {
		return nil, r.err
	}
	return r.players[teamID], nil
}

func TestDecodeBoxScoreWithStats(t *testing.T) {
	roster := &recordingRoster{}
	boxScore, err := DecodeBoxScore(context.Background(), []byte(boxScoreWithStats), roster)
	if err != nil {
		t.Fatalf("DecodeBoxScore: %v", err)
	}

	if len(roster.calls) != 0 {
		t.Errorf("roster consulted %v despite stats block", roster.calls)
	}
	if boxScore.Source != SourceStats || boxScore.Stats == nil {
		t.Fatalf("Source = %v, Stats = %v", boxScore.Source, boxScore.Stats)
	}
	if boxScore.Stats.LeadChanges.Int() != 7 || boxScore.Stats.TimesTied.Int() != 4 {
		t.Errorf("game stats = %+v", boxScore.Stats)
	}

	if boxScore.Home.TriCode != "BOS" || boxScore.Visitor.TriCode != "ATL" {
		t.Errorf("tri-codes = %s / %s", boxScore.Home.TriCode, boxScore.Visitor.TriCode)
	}
	if boxScore.Home.LineScore != [4]int{20, 33, 22, 0} {
		t.Errorf("home line score = %v", boxScore.Home.LineScore)
	}
	if boxScore.Visitor.Totals.FieldGoalsAtt.Int() != 60 || boxScore.Visitor.Totals.FieldGoalPct.Float() != 45.0 {
		t.Errorf("visitor totals = %+v", boxScore.Visitor.Totals)
	}
	// Home totals were absent: zero value, rendered as "0".
	if boxScore.Home.Totals != (Totals{}) || boxScore.Home.Totals.Points.String() != "0" {
		t.Errorf("home totals should be zero, got %+v", boxScore.Home.Totals)
	}
	if boxScore.Home.LongestRun.Int() != 11 {
		t.Errorf("home longest run = %q", boxScore.Home.LongestRun)
	}
	leaders := boxScore.Visitor.Leaders
	if leaders == nil || leaders.Points.Value.Int() != 21 || leaders.Points.Players[0].LastName != "Young" {
		t.Errorf("visitor leaders = %+v", leaders)
	}
	if boxScore.Home.Leaders != nil {
		t.Errorf("home leaders should be nil, got %+v", boxScore.Home.Leaders)
	}

	if len(boxScore.Players) != 3 {
		t.Fatalf("players = %d, want 3", len(boxScore.Players))
	}
	tatum := boxScore.Players[0]
	if tatum.Name() != "Jayson Tatum" || !tatum.OnCourt || tatum.Points.Int() != 24 || tatum.PlusMinus.Int() != 6 {
		t.Errorf("tatum = %+v", tatum)
	}
	young := boxScore.Players[1]
	if young.Points.Int() != 21 || young.TotalRebounds.String() != "0" {
		t.Errorf("young = %+v", young)
	}
	pritchard := boxScore.Players[2]
	if pritchard.HasStats() || pritchard.DidNotPlay == "" {
		t.Errorf("pritchard = %+v", pritchard)
	}

	celtics := boxScore.TeamPlayers("1610612738")
	if len(celtics) != 2 || celtics[0].LastName != "Tatum" || celtics[1].LastName != "Pritchard" {
		t.Errorf("TeamPlayers(BOS) = %+v", celtics)
	}
	if got := boxScore.StatusLabel(); got != "Q3 5:32" {
		t.Errorf("StatusLabel() = %q", got)
	}
}

func TestDecodeBoxScoreUnparseableNumbersAreZero(t *testing.T) {
	payload := strings.NewReplacer(
		`"score": "75"`, `"score": "99999999999999999999"`,
		`"points": "24"`, `"points": "abc"`,
		`"assists": "3"`, `"assists": "--"`,
		`"fgp": "52.9"`, `"fgp": "n/a"`,
	).Replace(boxScoreWithStats)
	boxScore, err := DecodeBoxScore(context.Background(), []byte(payload), &recordingRoster{})
	if err != nil {
		t.Fatalf("DecodeBoxScore: %v", err)
	}
	if boxScore.Home.Score != 0 {
		t.Errorf("oversized home score = %d, want 0", boxScore.Home.Score)
	}
	tatum := boxScore.Players[0]
	for name, stat := range map[string]Stat{"points": tatum.Points, "assists": tatum.Assists, "fgp": tatum.FieldGoalPct} {
		if stat.String() != "0" || stat.Int() != 0 || stat.Present() {
			t.Errorf("%s = %q, String() %q, want absent", name, stat, stat.String())
		}
	}
	if tatum.Minutes.String() != "28:14" {
		t.Errorf("minutes = %q", tatum.Minutes)
	}
}

func TestDecodeBoxScoreWithoutStatsUsesRoster(t *testing.T) {
	roster := &recordingRoster{players: map[string][]Player{
		"1610612737": {
			{PersonID: "1", FirstName: "Trae", LastName: "Young", TeamID: "1610612737"},
			{PersonID: "2", FirstName: "John", LastName: "Collins", TeamID: "1610612737"},
		},
		"1610612738": {
			{PersonID: "3", FirstName: "Jayson", LastName: "Tatum", TeamID: "1610612738"},
		},
	}}

	boxScore, err := DecodeBoxScore(context.Background(), []byte(boxScoreWithoutStats), roster)
	if err != nil {
		t.Fatalf("DecodeBoxScore: %v", err)
	}

	if !slices.Equal(roster.calls, []string{"1610612737", "1610612738"}) {
		t.Errorf("roster calls = %v, want home then visitor exactly once each", roster.calls)
	}
	if boxScore.Source != SourceRoster || boxScore.Stats != nil {
		t.Errorf("Source = %v, Stats = %v", boxScore.Source, boxScore.Stats)
	}

	var names []string
	for _, player := range boxScore.Players {
		names = append(names, player.LastName)
		if player.Points.String() != "0" || player.Points.Present() {
			t.Errorf("%s points = %q, want absent rendered as 0", player.Name(), player.Points)
		}
		if player.HasStats() {
			t.Errorf("%s should have no stats", player.Name())
		}
	}
	if !slices.Equal(names, []string{"Young", "Collins", "Tatum"}) {
		t.Errorf("player order = %v", names)
	}

	if boxScore.Home.LineScore != [4]int{} || boxScore.Home.Score != 0 {
		t.Errorf("pre-game home team = %+v", boxScore.Home)
	}
	if boxScore.Home.Totals != (Totals{}) {
		t.Errorf("totals should be zero: %+v", boxScore.Home.Totals)
	}
}

func TestDecodeBoxScoreRosterFailureIsFatal(t *testing.T) {
	failure := errors.New("players feed unavailable")
	roster := &recordingRoster{err: failure}

	boxScore, err := DecodeBoxScore(context.Background(), []byte(boxScoreWithoutStats), roster)
	if err == nil {
		t.Fatalf("expected error, got box score with %d players", len(boxScore.Players))
	}
	if !errors.Is(err, failure) {
		t.Errorf("error %v does not wrap roster failure", err)
	}
	if !strings.Contains(err.Error(), "1610612737") {
		t.Errorf("error %q should name the team", err)
	}
}

func TestDecodeBoxScoreWithoutStatsNeedsRoster(t *testing.T) {
	_, err := DecodeBoxScore(context.Background(), []byte(boxScoreWithoutStats), nil)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Field != "stats" {
		t.Fatalf("expected DecodeError on stats, got %v", err)
	}
}

func TestDecodeBoxScoreAcceptsDecodedRoster(t *testing.T) {
	roster, err := DecodeRoster([]byte(rosterPayload))
	if err != nil {
		t.Fatalf("DecodeRoster: %v", err)
	}
	boxScore, err := DecodeBoxScore(context.Background(), []byte(boxScoreWithoutStats), roster)
	if err != nil {
		t.Fatalf("DecodeBoxScore: %v", err)
	}
	if len(boxScore.Players) != 3 || boxScore.Players[0].TeamID != "1610612737" {
		t.Errorf("players = %+v", boxScore.Players)
	}
}

func TestLineScoreAlwaysFourSlots(t *testing.T) {
	tests := []struct {
		name         string
		linescore    string
		want         [4]int
		wantOvertime []int
	}{
		{"none", `[]`, [4]int{0, 0, 0, 0}, nil},
		{"missing", ``, [4]int{0, 0, 0, 0}, nil},
		{"one", `[{"score":"31"}]`, [4]int{31, 0, 0, 0}, nil},
		{"two", `[{"score":"31"},{"score":"22"}]`, [4]int{31, 22, 0, 0}, nil},
		{"three", `[{"score":"31"},{"score":"22"},{"score":""}]`, [4]int{31, 22, 0, 0}, nil},
		{"four", `[{"score":"31"},{"score":"22"},{"score":"19"},{"score":"28"}]`, [4]int{31, 22, 19, 28}, nil},
		{"double overtime", `[{"score":"31"},{"score":"22"},{"score":"19"},{"score":"28"},{"score":"9"},{"score":"12"}]`,
			[4]int{31, 22, 19, 28}, []int{9, 12}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			field := ""
			if test.linescore != "" {
				field = `, "linescore": ` + test.linescore
			}
			payload := `{"basicGameData": {"period": {"current": 4},
				"hTeam": {"teamId": "1"` + field + `},
				"vTeam": {"teamId": "2"}}, "stats": {}}`
			boxScore, err := DecodeBoxScore(context.Background(), []byte(payload), nil)
			if err != nil {
				t.Fatalf("DecodeBoxScore: %v", err)
			}
			if boxScore.Home.LineScore != test.want {
				t.Errorf("LineScore = %v, want %v", boxScore.Home.LineScore, test.want)
			}
			if !slices.Equal(boxScore.Home.Overtime, test.wantOvertime) {
				t.Errorf("Overtime = %v, want %v", boxScore.Home.Overtime, test.wantOvertime)
			}
			wantOT := 0
			for _, points := range test.wantOvertime {
				wantOT += points
			}
			if boxScore.Home.OvertimePoints() != wantOT {
				t.Errorf("OvertimePoints() = %d, want %d", boxScore.Home.OvertimePoints(), wantOT)
			}
		})
	}
}

func TestDecodeBoxScoreRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{"no basic data", `{"stats": {}}`, "basicGameData"},
		{"no period", `{"basicGameData": {"hTeam": {"teamId": "1"}, "vTeam": {"teamId": "2"}}}`, "basicGameData.period"},
		{"no home team", `{"basicGameData": {"period": {}, "vTeam": {"teamId": "2"}}}`, "basicGameData.hTeam"},
		{"no visitor team", `{"basicGameData": {"period": {}, "hTeam": {"teamId": "1"}}}`, "basicGameData.vTeam"},
		{"empty home id", `{"basicGameData": {"period": {}, "hTeam": {"teamId": ""}, "vTeam": {"teamId": "2"}}}`, "basicGameData.hTeam.teamId"},
		{"empty visitor id", `{"basicGameData": {"period": {}, "hTeam": {"teamId": "1"}, "vTeam": {}}}`, "basicGameData.vTeam.teamId"},
		{"team not object", `{"basicGameData": {"period": {}, "hTeam": [], "vTeam": {"teamId": "2"}}}`, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			roster := &recordingRoster{}
			_, err := DecodeBoxScore(context.Background(), []byte(test.payload), roster)
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %v", err)
			}
			if decodeErr.Feed != FeedBoxScore || decodeErr.Field != test.wantField {
				t.Errorf("DecodeError = %+v, want field %q", decodeErr, test.wantField)
			}
			if len(roster.calls) != 0 {
				t.Errorf("roster consulted on failed decode: %v", roster.calls)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	regulation := GamePeriod{Current: 4, MaxRegular: 4}
	tests := []struct {
		name   string
		status GameStatus
		period GamePeriod
		clock  string
		want   string
	}{
		{"scheduled", StatusScheduled, GamePeriod{MaxRegular: 4}, "", "7:30 PM ET"},
		{"live", StatusLive, GamePeriod{Current: 2, MaxRegular: 4}, "3:10", "Q2 3:10"},
		{"half", StatusLive, GamePeriod{Current: 2, MaxRegular: 4, Halftime: true}, "", "Half"},
		{"end of period", StatusLive, GamePeriod{Current: 3, MaxRegular: 4, EndOfPeriod: true}, "", "End Q3"},
		{"overtime", StatusLive, GamePeriod{Current: 6, MaxRegular: 4}, "1:02", "OT2 1:02"},
		{"final", StatusFinal, regulation, "", "Final"},
		{"final overtime", StatusFinal, GamePeriod{Current: 5, MaxRegular: 4}, "", "Final/OT"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := StatusLabel(test.status, test.period, test.clock, "7:30 PM ET"); got != test.want {
				t.Errorf("StatusLabel() = %q, want %q", got, test.want)
			}
		})
	}
}

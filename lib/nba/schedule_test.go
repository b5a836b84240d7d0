// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"errors"
	"slices"
	"testing"
)

const schedulePayload = `{
  "_internal": {"pubDateTime": "2021-04-13 04:00:00.000 EDT"},
  "league": {
    "standard": [
      {"gameId": "0022000780", "startDateEastern": "20210412", "startTimeEastern": "7:00 PM ET",
       "startTimeUTC": "2021-04-12T23:00:00.000Z", "gameUrlCode": "20210412/ATLBOS", "statusNum": 3,
       "period": {"current": 4, "type": 0, "maxRegular": 4},
       "hTeam": {"teamId": "1610612738", "score": "112", "win": "30", "loss": "28"},
       "vTeam": {"teamId": "1610612737", "score": "99", "win": "29", "loss": "27"}},
      {"gameId": "0022000781", "startDateEastern": "20210412", "startTimeEastern": "7:30 PM ET",
       "startTimeUTC": "2021-04-12T23:30:00.000Z", "gameUrlCode": "20210412/DALNYK", "statusNum": 3,
       "period": {"current": 5, "type": 1, "maxRegular": 4},
       "hTeam": {"teamId": "1610612752", "score": "117", "win": "", "loss": ""},
       "vTeam": {"teamId": "1610612742", "score": "109", "win": "", "loss": ""}},
      {"gameId": "0022000779", "startDateEastern": "20210413", "startTimeEastern": "8:00 PM ET",
       "startTimeUTC": "2021-04-14T00:00:00.000Z", "gameUrlCode": "20210413/LALMIL", "statusNum": 1,
       "period": {"current": 0, "type": 0, "maxRegular": 4},
       "hTeam": {"teamId": "1610612749", "score": "", "win": "38", "loss": "18"},
       "vTeam": {"teamId": "1610612747", "score": "", "win": "33", "loss": "23"}},
      {"gameId": "0022000782", "startDateEastern": "20210412", "startTimeEastern": "10:00 PM ET",
       "startTimeUTC": "2021-04-13T02:00:00.000Z", "gameUrlCode": "20210412/PHXGSW", "statusNum": 3,
       "period": {"current": 4, "type": 0, "maxRegular": 4},
       "playoffs": {"roundNum": "1", "confName": "West", "seriesId": "0042000101",
                    "isSeriesCompleted": false, "gameNumInSeries": "2", "isIfNecessary": false,
                    "vTeam": {"seedNum": "2"}, "hTeam": {"seedNum": "7"}},
       "hTeam": {"teamId": "1610612744", "score": "104", "win": "27", "loss": "29"},
       "vTeam": {"teamId": "1610612756", "score": "121", "win": "40", "loss": "15"}}
    ]
  }
}`

func TestGamesOnDate(t *testing.T) {
	schedule, err := DecodeSchedule([]byte(schedulePayload))
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}

	got := schedule.GamesOnDate("20210412")
	want := []string{"0022000780", "0022000781", "0022000782"}
	if !slices.Equal(got, want) {
		t.Errorf("GamesOnDate(20210412) = %v, want %v", got, want)
	}

	if got := schedule.GamesOnDate("20210413"); !slices.Equal(got, []string{"0022000779"}) {
		t.Errorf("GamesOnDate(20210413) = %v", got)
	}

	empty := schedule.GamesOnDate("20210414")
	if empty == nil || len(empty) != 0 {
		t.Errorf("GamesOnDate(20210414) = %#v, want empty non-nil slice", empty)
	}
}

func TestGamesOnDateReturnsCopy(t *testing.T) {
	schedule, err := DecodeSchedule([]byte(schedulePayload))
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}
	ids := schedule.GamesOnDate("20210412")
	ids[0] = "mutated"
	if again := schedule.GamesOnDate("20210412"); again[0] != "0022000780" {
		t.Errorf("schedule index was mutated through returned slice: %v", again)
	}
}

func TestScheduleGame(t *testing.T) {
	schedule, err := DecodeSchedule([]byte(schedulePayload))
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}
	if schedule.Len() != 4 {
		t.Errorf("Len() = %d, want 4", schedule.Len())
	}

	game, ok := schedule.Game("0022000781")
	if !ok {
		t.Fatal("game 0022000781 not found")
	}
	if game.Home.TeamID != "1610612752" || game.Home.Score != 117 {
		t.Errorf("home = %+v", game.Home)
	}
	// Empty record strings default to zero.
	if game.Home.Win != 0 || game.Visitor.Loss != 0 {
		t.Errorf("empty records should decode as zero: home %+v visitor %+v", game.Home, game.Visitor)
	}
	if game.Status != StatusFinal || game.Period.Label() != "OT1" {
		t.Errorf("status = %v, period label = %q", game.Status, game.Period.Label())
	}
	visitor, home := game.TriCodes()
	if visitor != "DAL" || home != "NYK" {
		t.Errorf("TriCodes() = %q, %q", visitor, home)
	}
	start, ok := game.StartTime()
	if !ok || start.Hour() != 23 || start.Minute() != 30 {
		t.Errorf("StartTime() = %v, %v", start, ok)
	}

	upcoming, _ := schedule.Game("0022000779")
	if upcoming.Status != StatusScheduled || upcoming.Home.Score != 0 {
		t.Errorf("upcoming game = %+v", upcoming)
	}

	playoff, _ := schedule.Game("0022000782")
	if playoff.Playoffs == nil {
		t.Fatal("playoffs block not decoded")
	}
	if playoff.Playoffs.Round != 1 || playoff.Playoffs.GameInSeries != 2 ||
		playoff.Playoffs.HomeSeed != 7 || playoff.Playoffs.VisitorSeed != 2 {
		t.Errorf("playoffs = %+v", playoff.Playoffs)
	}

	if _, ok := schedule.Game("missing"); ok {
		t.Error("Game(missing) should report not found")
	}
}

func TestDecodeScheduleErrors(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{"missing league", `{"standard": []}`, "league"},
		{"missing standard", `{"league": {"africa": []}}`, "league.standard"},
		{"null standard", `{"league": {"standard": null}}`, "league.standard"},
		{"standard not array", `{"league": {"standard": {"gameId": "1"}}}`, ""},
		{"not json", `<html>`, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeSchedule([]byte(test.payload))
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %v", err)
			}
			if decodeErr.Feed != FeedSchedule {
				t.Errorf("Feed = %q", decodeErr.Feed)
			}
			if decodeErr.Field != test.wantField {
				t.Errorf("Field = %q, want %q", decodeErr.Field, test.wantField)
			}
			if test.wantField != "" && !errors.Is(err, ErrMissingField) {
				t.Errorf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestDecodeScheduleEmptySeason(t *testing.T) {
	schedule, err := DecodeSchedule([]byte(`{"league": {"standard": []}}`))
	if err != nil {
		t.Fatalf("DecodeSchedule: %v", err)
	}
	if got := schedule.GamesOnDate("20210412"); got == nil || len(got) != 0 {
		t.Errorf("GamesOnDate = %#v", got)
	}
}

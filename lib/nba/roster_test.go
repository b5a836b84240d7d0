// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"context"
	"errors"
	"testing"
)

const rosterPayload = `{
  "league": {
    "standard": [
      {"personId": "1629027", "firstName": "Trae", "lastName": "Young", "teamId": "1610612737", "jersey": "11", "pos": "G", "isActive": true},
      {"personId": "1628369", "firstName": "Jayson", "lastName": "Tatum", "teamId": "1610612738", "jersey": "0", "pos": "F-G", "isActive": true},
      {"personId": "203991", "firstName": "Clint", "lastName": "Capela", "teamId": "1610612737", "jersey": "15", "pos": "C"},
      {"personId": "101", "firstName": "Retired", "lastName": "Player", "teamId": "1610612737", "isActive": false}
    ]
  }
}`

func TestRosterPlayersForTeam(t *testing.T) {
	roster, err := DecodeRoster([]byte(rosterPayload))
	if err != nil {
		t.Fatalf("DecodeRoster: %v", err)
	}
	if roster.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (inactive player dropped)", roster.Len())
	}

	hawks, err := roster.PlayersForTeam(context.Background(), "1610612737")
	if err != nil {
		t.Fatalf("PlayersForTeam: %v", err)
	}
	if len(hawks) != 2 || hawks[0].LastName != "Young" || hawks[1].LastName != "Capela" {
		t.Fatalf("hawks = %+v", hawks)
	}
	if hawks[0].Position != "G" || hawks[0].Jersey != "11" {
		t.Errorf("young = %+v", hawks[0])
	}
	for _, player := range hawks {
		if player.HasStats() || player.OnCourt {
			t.Errorf("roster player %s should carry no stats", player.Name())
		}
	}

	nobody, err := roster.PlayersForTeam(context.Background(), "0")
	if err != nil || nobody == nil || len(nobody) != 0 {
		t.Errorf("unknown team = %#v, %v", nobody, err)
	}
}

func TestDecodeRosterErrors(t *testing.T) {
	for _, payload := range []string{`{}`, `{"league": {}}`, `[]`} {
		_, err := DecodeRoster([]byte(payload))
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) || decodeErr.Feed != FeedPlayers {
			t.Errorf("DecodeRoster(%s) = %v, want players DecodeError", payload, err)
		}
	}
}

func TestTeamNames(t *testing.T) {
	if got := TeamName("BOS"); got != "Boston Celtics" {
		t.Errorf("TeamName(BOS) = %q", got)
	}
	if got := TeamName("LBN"); got != "LBN" {
		t.Errorf("unknown tri-code should pass through, got %q", got)
	}
	if got := TeamTriCode("1610612737"); got != "ATL" {
		t.Errorf("TeamTriCode = %q", got)
	}
	if len(teamNames) != 30 || len(teamTriCodes) != 30 {
		t.Errorf("team tables have %d names and %d ids", len(teamNames), len(teamTriCodes))
	}
	for teamID, triCode := range teamTriCodes {
		if _, ok := teamNames[triCode]; !ok {
			t.Errorf("team %s maps to %s which has no name", teamID, triCode)
		}
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

// Player is one player's line in a box score. Players that came from
// the roster feed rather than the stats block have every statistic
// absent.
type Player struct {
	PersonID  string
	FirstName string
	LastName  string
	TeamID    string
	Jersey    string
	Position  string
	OnCourt   bool

	// DidNotPlay carries the feed's reason text, e.g. "DNP - Coach's
	// Decision". Empty for players who played or have not yet.
	DidNotPlay string

	Minutes        Stat
	Points         Stat
	FieldGoalsMade Stat
	FieldGoalsAtt  Stat
	FieldGoalPct   Stat
	FreeThrowsMade Stat
	FreeThrowsAtt  Stat
	FreeThrowPct   Stat
	ThreesMade     Stat
	ThreesAtt      Stat
	ThreePct       Stat
	OffRebounds    Stat
	DefRebounds    Stat
	TotalRebounds  Stat
	Assists        Stat
	PersonalFouls  Stat
	Steals         Stat
	Turnovers      Stat
	Blocks         Stat
	PlusMinus      Stat
}

// Name returns "First Last", or whichever half is present.
func (p *Player) Name() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// HasStats reports whether any statistic was published for the player.
func (p *Player) HasStats() bool {
	return p.Minutes.Present() || p.Points.Present() || p.TotalRebounds.Present() ||
		p.Assists.Present() || p.FieldGoalsAtt.Present() || p.PersonalFouls.Present()
}

type wirePlayer struct {
	PersonID  string   `json:"personId"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	TeamID    string   `json:"teamId"`
	Jersey    string   `json:"jersey"`
	Pos       string   `json:"pos"`
	IsOnCourt flexBool `json:"isOnCourt"`
	DNP       string   `json:"dnp"`

	Min       Stat `json:"min"`
	Points    Stat `json:"points"`
	FGM       Stat `json:"fgm"`
	FGA       Stat `json:"fga"`
	FGP       Stat `json:"fgp"`
	FTM       Stat `json:"ftm"`
	FTA       Stat `json:"fta"`
	FTP       Stat `json:"ftp"`
	TPM       Stat `json:"tpm"`
	TPA       Stat `json:"tpa"`
	TPP       Stat `json:"tpp"`
	OffReb    Stat `json:"offReb"`
	DefReb    Stat `json:"defReb"`
	TotReb    Stat `json:"totReb"`
	Assists   Stat `json:"assists"`
	PFouls    Stat `json:"pFouls"`
	Steals    Stat `json:"steals"`
	Turnovers Stat `json:"turnovers"`
	Blocks    Stat `json:"blocks"`
	PlusMinus Stat `json:"plusMinus"`
}

func (w *wirePlayer) decode() Player {
	return Player{
		PersonID:       w.PersonID,
		FirstName:      w.FirstName,
		LastName:       w.LastName,
		TeamID:         w.TeamID,
		Jersey:         w.Jersey,
		Position:       w.Pos,
		OnCourt:        bool(w.IsOnCourt),
		DidNotPlay:     w.DNP,
		Minutes:        w.Min,
		Points:         w.Points,
		FieldGoalsMade: w.FGM,
		FieldGoalsAtt:  w.FGA,
		FieldGoalPct:   w.FGP,
		FreeThrowsMade: w.FTM,
		FreeThrowsAtt:  w.FTA,
		FreeThrowPct:   w.FTP,
		ThreesMade:     w.TPM,
		ThreesAtt:      w.TPA,
		ThreePct:       w.TPP,
		OffRebounds:    w.OffReb,
		DefRebounds:    w.DefReb,
		TotalRebounds:  w.TotReb,
		Assists:        w.Assists,
		PersonalFouls:  w.PFouls,
		Steals:         w.Steals,
		Turnovers:      w.Turnovers,
		Blocks:         w.Blocks,
		PlusMinus:      w.PlusMinus,
	}
}

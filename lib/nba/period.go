// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"fmt"
	"strconv"
)

// Period is the quarter a play happened in. Every period after the
// fourth is OT.
type Period int

const (
	Q1 Period = iota + 1
	Q2
	Q3
	Q4
	OT
)

// ParsePeriod maps the play-by-play feed's period text to a Period.
// "1" through "4" are the regulation quarters; any other text,
// including "5", "", and malformed values, is OT. Callers that need to
// tell overtime from garbage keep the raw text alongside (see
// [Play.RawPeriod]).
func ParsePeriod(text string) Period {
	switch text {
	case "1":
		return Q1
	case "2":
		return Q2
	case "3":
		return Q3
	case "4":
		return Q4
	default:
		return OT
	}
}

func (p Period) String() string {
	switch p {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	case OT:
		return "OT"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// GameStatus is the coarse state of a game from the feed's statusNum.
type GameStatus int

const (
	StatusUnknown GameStatus = iota
	StatusScheduled
	StatusLive
	StatusFinal
)

func gameStatus(statusNum int) GameStatus {
	switch statusNum {
	case 1:
		return StatusScheduled
	case 2:
		return StatusLive
	case 3:
		return StatusFinal
	default:
		return StatusUnknown
	}
}

func (s GameStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusLive:
		return "live"
	case StatusFinal:
		return "final"
	default:
		return "unknown"
	}
}

// GamePeriod is the game-level period block shared by the schedule and
// box-score feeds.
type GamePeriod struct {
	Current     int
	Type        int
	MaxRegular  int
	Halftime    bool
	EndOfPeriod bool
}

type wireGamePeriod struct {
	Current       flexInt  `json:"current"`
	Type          flexInt  `json:"type"`
	MaxRegular    flexInt  `json:"maxRegular"`
	IsHalftime    flexBool `json:"isHalftime"`
	IsEndOfPeriod flexBool `json:"isEndOfPeriod"`
}

func (w *wireGamePeriod) decode() GamePeriod {
	period := GamePeriod{
		Current:     int(w.Current),
		Type:        int(w.Type),
		MaxRegular:  int(w.MaxRegular),
		Halftime:    bool(w.IsHalftime),
		EndOfPeriod: bool(w.IsEndOfPeriod),
	}
	if period.MaxRegular == 0 {
		period.MaxRegular = 4
	}
	return period
}

// Label returns "Q1".."Q4" for regulation and "OT1", "OT2", ... after.
// A game that has not started has no label.
func (p GamePeriod) Label() string {
	switch {
	case p.Current <= 0:
		return ""
	case p.Current <= p.MaxRegular:
		return "Q" + strconv.Itoa(p.Current)
	default:
		return "OT" + strconv.Itoa(p.Current-p.MaxRegular)
	}
}

// StatusLabel summarises game progress for a header line: "Final",
// "Final/OT", "Half", "End Q3", "Q4 2:31", or the scheduled start.
func StatusLabel(status GameStatus, period GamePeriod, clock, startTime string) string {
	switch {
	case status == StatusFinal && period.Current > period.MaxRegular && period.MaxRegular > 0:
		return "Final/OT"
	case status == StatusFinal:
		return "Final"
	case status == StatusScheduled || period.Current <= 0:
		return startTime
	case period.Halftime:
		return "Half"
	case period.EndOfPeriod:
		return "End " + period.Label()
	case clock == "":
		return period.Label()
	default:
		return period.Label() + " " + clock
	}
}

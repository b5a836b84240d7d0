// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

// Playoffs describes a postseason game's place in its series. The
// schedule and box-score feeds carry the same block.
type Playoffs struct {
	Round           int
	Conference      string
	SeriesID        string
	SeriesCompleted bool
	GameInSeries    int
	IfNecessary     bool
	HomeSeed        int
	VisitorSeed     int
}

type wirePlayoffs struct {
	RoundNum          flexInt  `json:"roundNum"`
	ConfName          string   `json:"confName"`
	SeriesID          string   `json:"seriesId"`
	IsSeriesCompleted flexBool `json:"isSeriesCompleted"`
	GameNumInSeries   flexInt  `json:"gameNumInSeries"`
	IsIfNecessary     flexBool `json:"isIfNecessary"`
	HTeam             struct {
		SeedNum flexInt `json:"seedNum"`
	} `json:"hTeam"`
	VTeam struct {
		SeedNum flexInt `json:"seedNum"`
	} `json:"vTeam"`
}

func (w *wirePlayoffs) decode() *Playoffs {
	if w == nil {
		return nil
	}
	return &Playoffs{
		Round:           int(w.RoundNum),
		Conference:      w.ConfName,
		SeriesID:        w.SeriesID,
		SeriesCompleted: bool(w.IsSeriesCompleted),
		GameInSeries:    int(w.GameNumInSeries),
		IfNecessary:     bool(w.IsIfNecessary),
		HomeSeed:        int(w.HTeam.SeedNum),
		VisitorSeed:     int(w.VTeam.SeedNum),
	}
}

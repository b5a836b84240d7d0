// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

// DefaultClock is the clock shown for a play the feed left without one:
// the start of a period.
const DefaultClock = "12:00"

// Play is one play-by-play event.
type Play struct {
	Clock        string
	Description  string
	HomeScore    int
	VisitorScore int
	Period       Period

	// RawPeriod is the feed's period text, untrimmed. Period maps
	// everything but "1" through "4" to OT; RawPeriod distinguishes "5"
	// from "6" or garbage.
	RawPeriod string

	// TeamTriCode is the team credited with the play, empty for
	// neutral events such as period starts.
	TeamTriCode string
}

type wirePlayByPlay struct {
	SportsContent *struct {
		Game *struct {
			Play *[]wirePlay `json:"play"`
		} `json:"game"`
	} `json:"sports_content"`
}

type wirePlay struct {
	Clock        string   `json:"clock"`
	Description  string   `json:"description"`
	HomeScore    flexInt  `json:"home_score"`
	VisitorScore flexInt  `json:"visitor_score"`
	Period       feedText `json:"period"`
	TeamAbr      string   `json:"team_abr"`
}

// DecodePlayByPlay decodes the play-by-play feed, preserving feed
// order. A game without a play list yet decodes to an empty, non-nil
// slice.
func DecodePlayByPlay(data []byte) ([]Play, error) {
	var wire wirePlayByPlay
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, malformed(FeedPlayByPlay, err)
	}
	if wire.SportsContent == nil {
		return nil, missingField(FeedPlayByPlay, "sports_content")
	}
	if wire.SportsContent.Game == nil {
		return nil, missingField(FeedPlayByPlay, "sports_content.game")
	}
	if wire.SportsContent.Game.Play == nil {
		return []Play{}, nil
	}

	entries := *wire.SportsContent.Game.Play
	plays := make([]Play, 0, len(entries))
	for _, entry := range entries {
		clock := entry.Clock
		if clock == "" {
			clock = DefaultClock
		}
		raw := string(entry.Period)
		plays = append(plays, Play{
			Clock:        clock,
			Description:  entry.Description,
			HomeScore:    int(entry.HomeScore),
			VisitorScore: int(entry.VisitorScore),
			Period:       ParsePeriod(raw),
			RawPeriod:    raw,
			TeamTriCode:  entry.TeamAbr,
		})
	}
	return plays, nil
}

// ScoreFlow returns the home-minus-visitor margin after each play, the
// series the score-flow chart draws.
func ScoreFlow(plays []Play) []int {
	margins := make([]int, len(plays))
	for index, play := range plays {
		margins[index] = play.HomeScore - play.VisitorScore
	}
	return margins
}

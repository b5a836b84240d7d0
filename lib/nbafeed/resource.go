// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbafeed

import (
	"fmt"
	"strconv"

	"github.com/bureau-foundation/nbascores/lib/nba"
)

// Resource identifies one feed document.
type Resource struct {
	Feed nba.Feed

	// Season is the season's starting year; used by the schedule and
	// players feeds.
	Season string

	// Date (yyyymmdd) and GameID address the per-game feeds.
	Date   string
	GameID string
}

// ScheduleResource is the season schedule.
func ScheduleResource(season string) Resource {
	return Resource{Feed: nba.FeedSchedule, Season: season}
}

// PlayersResource is the league-wide players feed.
func PlayersResource(season string) Resource {
	return Resource{Feed: nba.FeedPlayers, Season: season}
}

// BoxScoreResource is one game's box score.
func BoxScoreResource(date, gameID string) Resource {
	return Resource{Feed: nba.FeedBoxScore, Date: date, GameID: gameID}
}

// PlayByPlayResource is one game's play-by-play.
func PlayByPlayResource(date, gameID string) Resource {
	return Resource{Feed: nba.FeedPlayByPlay, Date: date, GameID: gameID}
}

// Path returns the URL path of the resource on the feed server.
func (r Resource) Path() string {
	switch r.Feed {
	case nba.FeedSchedule:
		return "/prod/v1/" + r.Season + "/schedule.json"
	case nba.FeedPlayers:
		return "/prod/v1/" + r.Season + "/players.json"
	case nba.FeedBoxScore:
		return "/prod/v1/" + r.Date + "/" + r.GameID + "_boxscore.json"
	case nba.FeedPlayByPlay:
		return "/data/10s/json/cms/noseason/game/" + r.Date + "/" + r.GameID + "/pbp_all.json"
	default:
		return ""
	}
}

// FileName returns the resource's file name inside an offline feed
// directory.
func (r Resource) FileName() string {
	switch r.Feed {
	case nba.FeedSchedule:
		return "schedule.json"
	case nba.FeedPlayers:
		return "players.json"
	case nba.FeedBoxScore:
		return r.Date + "_" + r.GameID + "_boxscore.json"
	case nba.FeedPlayByPlay:
		return r.Date + "_" + r.GameID + "_pbp.json"
	default:
		return ""
	}
}

// Operation describes the fetch for error messages.
func (r Resource) Operation() string {
	switch r.Feed {
	case nba.FeedSchedule:
		return "fetch " + r.Season + " schedule"
	case nba.FeedPlayers:
		return "fetch " + r.Season + " players"
	case nba.FeedBoxScore:
		return fmt.Sprintf("fetch box score for game %s", r.GameID)
	case nba.FeedPlayByPlay:
		return fmt.Sprintf("fetch play-by-play for game %s", r.GameID)
	default:
		return "fetch " + string(r.Feed)
	}
}

func (r Resource) validate() error {
	switch r.Feed {
	case nba.FeedSchedule, nba.FeedPlayers:
		if r.Season == "" {
			return fmt.Errorf("%s feed requires a season", r.Feed)
		}
	case nba.FeedBoxScore, nba.FeedPlayByPlay:
		if r.Date == "" || r.GameID == "" {
			return fmt.Errorf("%s feed requires a date and game id", r.Feed)
		}
	default:
		return fmt.Errorf("unknown feed %q", r.Feed)
	}
	return nil
}

// seasonOverruns are seasons whose games ran past the usual July finish.
// Dates are yyyymmdd, so string comparison orders them.
var seasonOverruns = []struct {
	from, through, season string
}{
	// The 2019-20 restart in Orlando finished in October 2020.
	{from: "20200801", through: "20201031", season: "2019"},
}

// SeasonForDate returns the season a yyyymmdd date belongs to. Seasons
// are named by the year they start in, and start in the autumn: a date
// before August belongs to the previous year's season, apart from the
// known overruns. The feed.season config setting overrides this for any
// date the rule gets wrong.
func SeasonForDate(date string) (string, error) {
	if len(date) != 8 {
		return "", fmt.Errorf("date %q is not yyyymmdd", date)
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return "", fmt.Errorf("date %q is not yyyymmdd", date)
	}
	month, err := strconv.Atoi(date[4:6])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("date %q is not yyyymmdd", date)
	}
	if _, err := strconv.Atoi(date[6:]); err != nil {
		return "", fmt.Errorf("date %q is not yyyymmdd", date)
	}
	for _, overrun := range seasonOverruns {
		if date >= overrun.from && date <= overrun.through {
			return overrun.season, nil
		}
	}
	if month < 8 {
		year--
	}
	return strconv.Itoa(year), nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

// LineScoreQuarters is the number of regulation slots in a line score.
const LineScoreQuarters = 4

// Team is one side of a box score.
type Team struct {
	TeamID  string
	TriCode string
	Win     int
	Loss    int
	Score   int

	// SeriesWin and SeriesLoss are the playoff series record; zero in
	// the regular season.
	SeriesWin  int
	SeriesLoss int

	// LineScore always has four slots. Quarters the feed has not
	// reached yet are zero.
	LineScore [LineScoreQuarters]int

	// Overtime holds the points of each overtime period in order.
	Overtime []int

	// Totals is the zero value when the box score has no stats block.
	Totals Totals

	// Leaders is nil when the feed has not ranked players yet.
	Leaders *Leaders

	FastBreakPoints    Stat
	PointsInPaint      Stat
	BiggestLead        Stat
	SecondChancePoints Stat
	PointsOffTurnovers Stat
	LongestRun         Stat
}

// OvertimePoints sums the overtime periods.
func (t *Team) OvertimePoints() int {
	total := 0
	for _, points := range t.Overtime {
		total += points
	}
	return total
}

// Name returns the team's full name, falling back to the tri-code.
func (t *Team) Name() string {
	return TeamName(t.TriCode)
}

// Totals is a team's aggregate statistics.
type Totals struct {
	Points         Stat
	Minutes        Stat
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
	TeamFouls      Stat
}

// Leaders holds the team's top scorer, rebounder, and assister. Ties
// list several players.
type Leaders struct {
	Points   Leader
	Rebounds Leader
	Assists  Leader
}

// Leader is one leader category.
type Leader struct {
	Value   Stat
	Players []LeaderPlayer
}

// LeaderPlayer identifies a player in a leader category.
type LeaderPlayer struct {
	PersonID  string
	FirstName string
	LastName  string
}

type wireTeam struct {
	TeamID     string  `json:"teamId"`
	TriCode    string  `json:"triCode"`
	Win        flexInt `json:"win"`
	Loss       flexInt `json:"loss"`
	SeriesWin  flexInt `json:"seriesWin"`
	SeriesLoss flexInt `json:"seriesLoss"`
	Score      flexInt `json:"score"`
	Linescore  []struct {
		Score flexInt `json:"score"`
	} `json:"linescore"`
}

func (w *wireTeam) decode() Team {
	team := Team{
		TeamID:     w.TeamID,
		TriCode:    w.TriCode,
		Win:        int(w.Win),
		Loss:       int(w.Loss),
		SeriesWin:  int(w.SeriesWin),
		SeriesLoss: int(w.SeriesLoss),
		Score:      int(w.Score),
	}
	if team.TriCode == "" {
		team.TriCode = TeamTriCode(team.TeamID)
	}
	for index, period := range w.Linescore {
		if index < LineScoreQuarters {
			team.LineScore[index] = int(period.Score)
			continue
		}
		team.Overtime = append(team.Overtime, int(period.Score))
	}
	return team
}

type wireTeamStats struct {
	FastBreakPoints    Stat        `json:"fastBreakPoints"`
	PointsInPaint      Stat        `json:"pointsInPaint"`
	BiggestLead        Stat        `json:"biggestLead"`
	SecondChancePoints Stat        `json:"secondChancePoints"`
	PointsOffTurnovers Stat        `json:"pointsOffTurnovers"`
	LongestRun         Stat        `json:"longestRun"`
	Totals             *wireTotals `json:"totals"`
	Leaders            *struct {
		Points   wireLeader `json:"points"`
		Rebounds wireLeader `json:"rebounds"`
		Assists  wireLeader `json:"assists"`
	} `json:"leaders"`
}

type wireTotals struct {
	Points    Stat `json:"points"`
	Min       Stat `json:"min"`
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
	TeamFouls Stat `json:"team_fouls"`
}

type wireLeader struct {
	Value   Stat `json:"value"`
	Players []struct {
		PersonID  string `json:"personId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"players"`
}

func (w *wireLeader) decode() Leader {
	leader := Leader{Value: w.Value}
	for _, player := range w.Players {
		leader.Players = append(leader.Players, LeaderPlayer{
			PersonID:  player.PersonID,
			FirstName: player.FirstName,
			LastName:  player.LastName,
		})
	}
	return leader
}

// applyTo copies the stats block's per-team section onto team.
func (w *wireTeamStats) applyTo(team *Team) {
	team.FastBreakPoints = w.FastBreakPoints
	team.PointsInPaint = w.PointsInPaint
	team.BiggestLead = w.BiggestLead
	team.SecondChancePoints = w.SecondChancePoints
	team.PointsOffTurnovers = w.PointsOffTurnovers
	team.LongestRun = w.LongestRun
	if totals := w.Totals; totals != nil {
		team.Totals = Totals{
			Points:         totals.Points,
			Minutes:        totals.Min,
			FieldGoalsMade: totals.FGM,
			FieldGoalsAtt:  totals.FGA,
			FieldGoalPct:   totals.FGP,
			FreeThrowsMade: totals.FTM,
			FreeThrowsAtt:  totals.FTA,
			FreeThrowPct:   totals.FTP,
			ThreesMade:     totals.TPM,
			ThreesAtt:      totals.TPA,
			ThreePct:       totals.TPP,
			OffRebounds:    totals.OffReb,
			DefRebounds:    totals.DefReb,
			TotalRebounds:  totals.TotReb,
			Assists:        totals.Assists,
			PersonalFouls:  totals.PFouls,
			Steals:         totals.Steals,
			Turnovers:      totals.Turnovers,
			Blocks:         totals.Blocks,
			PlusMinus:      totals.PlusMinus,
			TeamFouls:      totals.TeamFouls,
		}
	}
	if leaders := w.Leaders; leaders != nil {
		team.Leaders = &Leaders{
			Points:   leaders.Points.decode(),
			Rebounds: leaders.Rebounds.decode(),
			Assists:  leaders.Assists.decode(),
		}
	}
}

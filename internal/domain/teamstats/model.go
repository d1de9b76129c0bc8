package teamstats

import (
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
)

// Totals is the aggregate record of one team over a set of matches.
type Totals struct {
	TotalMatches   int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	WinRate        float64
	HomeWins       int
	AwayWins       int
}

// Stats is the cached Totals row for a team in a league season.
type Stats struct {
	ID       int64
	TeamID   int64
	LeagueID string
	Season   string
	Totals
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Filter struct {
	TeamID   int64
	LeagueID string
	Season   string
}

// Aggregate derives Totals for teamName from matches. The home side is
// detected by exact name equality with HomeTeam. Matches the team did not
// play and matches without both scores are ignored.
func Aggregate(teamName string, matches []match.Match) Totals {
	var out Totals
	for _, m := range matches {
		if !m.Played() {
			continue
		}

		var own, opponent int
		isHome := m.HomeTeam == teamName
		switch {
		case isHome:
			own, opponent = *m.HomeScore, *m.AwayScore
		case m.AwayTeam == teamName:
			own, opponent = *m.AwayScore, *m.HomeScore
		default:
			continue
		}

		out.TotalMatches++
		out.GoalsFor += own
		out.GoalsAgainst += opponent

		switch {
		case own > opponent:
			out.Wins++
			if isHome {
				out.HomeWins++
			} else {
				out.AwayWins++
			}
		case own == opponent:
			out.Draws++
		default:
			out.Losses++
		}
	}

	out.GoalDifference = out.GoalsFor - out.GoalsAgainst
	if out.TotalMatches > 0 {
		out.WinRate = float64(out.Wins) / float64(out.TotalMatches)
	}

	return out
}

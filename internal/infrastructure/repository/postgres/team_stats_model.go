package postgres

import (
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/teamstats"
)

var teamStatsColumns = []string{
	"id", "team_id", "league_id", "season", "total_matches",
	"wins", "draws", "losses", "goals_for", "goals_against", "goal_difference",
	"win_rate::float8 AS win_rate", "home_wins", "away_wins", "created_at", "updated_at",
}

type teamStatsTableModel struct {
	ID             int64     `db:"id"`
	TeamID         int64     `db:"team_id"`
	LeagueID       string    `db:"league_id"`
	Season         string    `db:"season"`
	TotalMatches   int       `db:"total_matches"`
	Wins           int       `db:"wins"`
	Draws          int       `db:"draws"`
	Losses         int       `db:"losses"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	WinRate        float64   `db:"win_rate"`
	HomeWins       int       `db:"home_wins"`
	AwayWins       int       `db:"away_wins"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type teamStatsInsertModel struct {
	TeamID         int64   `db:"team_id"`
	LeagueID       string  `db:"league_id"`
	Season         string  `db:"season"`
	TotalMatches   int     `db:"total_matches"`
	Wins           int     `db:"wins"`
	Draws          int     `db:"draws"`
	Losses         int     `db:"losses"`
	GoalsFor       int     `db:"goals_for"`
	GoalsAgainst   int     `db:"goals_against"`
	GoalDifference int     `db:"goal_difference"`
	WinRate        float64 `db:"win_rate"`
	HomeWins       int     `db:"home_wins"`
	AwayWins       int     `db:"away_wins"`
}

func (m teamStatsTableModel) toDomain() teamstats.Stats {
	return teamstats.Stats{
		ID:       m.ID,
		TeamID:   m.TeamID,
		LeagueID: m.LeagueID,
		Season:   m.Season,
		Totals: teamstats.Totals{
			TotalMatches:   m.TotalMatches,
			Wins:           m.Wins,
			Draws:          m.Draws,
			Losses:         m.Losses,
			GoalsFor:       m.GoalsFor,
			GoalsAgainst:   m.GoalsAgainst,
			GoalDifference: m.GoalDifference,
			WinRate:        m.WinRate,
			HomeWins:       m.HomeWins,
			AwayWins:       m.AwayWins,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

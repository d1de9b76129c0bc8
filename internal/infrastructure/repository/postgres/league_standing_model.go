package postgres

import (
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/leaguestanding"
)

var standingColumns = []string{
	"id", "league_id", "season", "team_name", "position",
	"played", "wins", "draws", "losses",
	"goals_for", "goals_against", "goal_difference", "points", "created_at",
}

type leagueStandingTableModel struct {
	ID             int64     `db:"id"`
	LeagueID       string    `db:"league_id"`
	Season         string    `db:"season"`
	TeamName       string    `db:"team_name"`
	Position       int       `db:"position"`
	Played         int       `db:"played"`
	Wins           int       `db:"wins"`
	Draws          int       `db:"draws"`
	Losses         int       `db:"losses"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	Points         int       `db:"points"`
	CreatedAt      time.Time `db:"created_at"`
}

type leagueStandingInsertModel struct {
	LeagueID       string `db:"league_id"`
	Season         string `db:"season"`
	TeamName       string `db:"team_name"`
	Position       int    `db:"position"`
	Played         int    `db:"played"`
	Wins           int    `db:"wins"`
	Draws          int    `db:"draws"`
	Losses         int    `db:"losses"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	GoalDifference int    `db:"goal_difference"`
	Points         int    `db:"points"`
}

func (m leagueStandingTableModel) toDomain() leaguestanding.Standing {
	return leaguestanding.Standing{
		ID:             m.ID,
		LeagueID:       m.LeagueID,
		Season:         m.Season,
		TeamName:       m.TeamName,
		Position:       m.Position,
		Played:         m.Played,
		Wins:           m.Wins,
		Draws:          m.Draws,
		Losses:         m.Losses,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
		CreatedAt:      m.CreatedAt,
	}
}

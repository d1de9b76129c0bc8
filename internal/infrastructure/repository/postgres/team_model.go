package postgres

import (
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/team"
)

var teamColumns = []string{"team_id", "team_name", "league_id", "season", "created_at"}

type teamTableModel struct {
	TeamID    int64     `db:"team_id"`
	Name      string    `db:"team_name"`
	LeagueID  string    `db:"league_id"`
	Season    string    `db:"season"`
	CreatedAt time.Time `db:"created_at"`
}

type teamInsertModel struct {
	Name     string `db:"team_name"`
	LeagueID string `db:"league_id"`
	Season   string `db:"season"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.TeamID,
		Name:      m.Name,
		LeagueID:  m.LeagueID,
		Season:    m.Season,
		CreatedAt: m.CreatedAt,
	}
}

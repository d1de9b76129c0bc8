package postgres

import (
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
)

var leagueColumns = []string{"league_id", "league_name", "country", "created_at"}

type leagueTableModel struct {
	LeagueID  string    `db:"league_id"`
	Name      string    `db:"league_name"`
	Country   string    `db:"country"`
	CreatedAt time.Time `db:"created_at"`
}

type leagueInsertModel struct {
	LeagueID string `db:"league_id"`
	Name     string `db:"league_name"`
	Country  string `db:"country"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:        m.LeagueID,
		Name:      m.Name,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
	}
}

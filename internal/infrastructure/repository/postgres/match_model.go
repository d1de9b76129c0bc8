package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
)

// match_time is cast to text so it scans as HH:MM:SS instead of a zero-date timestamp.
var matchColumns = []string{
	"match_id", "league_id", "season", "match_date", "match_time::text AS match_time",
	"home_team", "away_team", "home_score", "away_score", "status",
	"round", "stadium", "referee", "attendance", "created_at",
}

var matchStatColumns = []string{"id", "match_id", "stat_type", "home_value", "away_value", "created_at"}

type matchTableModel struct {
	MatchID    string         `db:"match_id"`
	LeagueID   string         `db:"league_id"`
	Season     string         `db:"season"`
	MatchDate  sql.NullTime   `db:"match_date"`
	MatchTime  sql.NullString `db:"match_time"`
	HomeTeam   string         `db:"home_team"`
	AwayTeam   string         `db:"away_team"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	Status     sql.NullString `db:"status"`
	Round      sql.NullString `db:"round"`
	Stadium    sql.NullString `db:"stadium"`
	Referee    sql.NullString `db:"referee"`
	Attendance sql.NullInt64  `db:"attendance"`
	CreatedAt  time.Time      `db:"created_at"`
}

type matchInsertModel struct {
	MatchID    string         `db:"match_id"`
	LeagueID   string         `db:"league_id"`
	Season     string         `db:"season"`
	MatchDate  sql.NullTime   `db:"match_date"`
	MatchTime  sql.NullString `db:"match_time"`
	HomeTeam   string         `db:"home_team"`
	AwayTeam   string         `db:"away_team"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	Status     sql.NullString `db:"status"`
	Round      sql.NullString `db:"round"`
	Stadium    sql.NullString `db:"stadium"`
	Referee    sql.NullString `db:"referee"`
	Attendance sql.NullInt64  `db:"attendance"`
}

type matchStatTableModel struct {
	ID        int64          `db:"id"`
	MatchID   string         `db:"match_id"`
	StatType  string         `db:"stat_type"`
	HomeValue sql.NullString `db:"home_value"`
	AwayValue sql.NullString `db:"away_value"`
	CreatedAt time.Time      `db:"created_at"`
}

type matchStatInsertModel struct {
	MatchID   string         `db:"match_id"`
	StatType  string         `db:"stat_type"`
	HomeValue sql.NullString `db:"home_value"`
	AwayValue sql.NullString `db:"away_value"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.MatchID,
		LeagueID:   m.LeagueID,
		Season:     m.Season,
		Date:       nullTimeToTimePtr(m.MatchDate),
		Time:       m.MatchTime.String,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeScore:  nullInt64ToIntPtr(m.HomeScore),
		AwayScore:  nullInt64ToIntPtr(m.AwayScore),
		Status:     m.Status.String,
		Round:      m.Round.String,
		Stadium:    m.Stadium.String,
		Referee:    m.Referee.String,
		Attendance: nullInt64ToIntPtr(m.Attendance),
		CreatedAt:  m.CreatedAt,
	}
}

func newMatchInsertModel(item match.Match) matchInsertModel {
	return matchInsertModel{
		MatchID:    item.ID,
		LeagueID:   item.LeagueID,
		Season:     item.Season,
		MatchDate:  nullTime(item.Date),
		MatchTime:  nullString(item.Time),
		HomeTeam:   item.HomeTeam,
		AwayTeam:   item.AwayTeam,
		HomeScore:  nullInt(item.HomeScore),
		AwayScore:  nullInt(item.AwayScore),
		Status:     nullString(item.Status),
		Round:      nullString(item.Round),
		Stadium:    nullString(item.Stadium),
		Referee:    nullString(item.Referee),
		Attendance: nullInt(item.Attendance),
	}
}

func (m matchStatTableModel) toDomain() match.Stat {
	return match.Stat{
		ID:        m.ID,
		MatchID:   m.MatchID,
		Type:      m.StatType,
		HomeValue: m.HomeValue.String,
		AwayValue: m.AwayValue.String,
		CreatedAt: m.CreatedAt,
	}
}

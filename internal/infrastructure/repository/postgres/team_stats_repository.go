package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/internal/domain/teamstats"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) List(ctx context.Context, filter teamstats.Filter) ([]teamstats.Stats, error) {
	conds := []qb.Condition{qb.Eq("team_id", filter.TeamID)}
	if filter.LeagueID != "" {
		conds = append(conds, qb.Eq("league_id", filter.LeagueID))
	}
	if filter.Season != "" {
		conds = append(conds, qb.Eq("season", filter.Season))
	}

	query, args, err := qb.Select(teamStatsColumns...).From("team_stats").
		Where(conds...).
		OrderBy("season DESC", "league_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team stats query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("select team stats", err)
	}

	out := make([]teamstats.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamStatsRepository) Upsert(ctx context.Context, item teamstats.Stats) error {
	insertModel := teamStatsInsertModel{
		TeamID:         item.TeamID,
		LeagueID:       item.LeagueID,
		Season:         item.Season,
		TotalMatches:   item.TotalMatches,
		Wins:           item.Wins,
		Draws:          item.Draws,
		Losses:         item.Losses,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		WinRate:        roundWinRate(item.WinRate),
		HomeWins:       item.HomeWins,
		AwayWins:       item.AwayWins,
	}
	query, args, err := qb.InsertModel("team_stats", insertModel, `ON CONFLICT (team_id, league_id, season) DO UPDATE SET
    total_matches = EXCLUDED.total_matches,
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    goal_difference = EXCLUDED.goal_difference,
    win_rate = EXCLUDED.win_rate,
    home_wins = EXCLUDED.home_wins,
    away_wins = EXCLUDED.away_wins,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert team stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(fmt.Sprintf("upsert team stats team=%d league=%s season=%s", item.TeamID, item.LeagueID, item.Season), err)
	}
	return nil
}

// roundWinRate matches the NUMERIC(5,4) column precision.
func roundWinRate(v float64) float64 {
	return math.Round(v*10000) / 10000
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/internal/domain/leaguestanding"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

type LeagueStandingRepository struct {
	db *sqlx.DB
}

func NewLeagueStandingRepository(db *sqlx.DB) *LeagueStandingRepository {
	return &LeagueStandingRepository{db: db}
}

func (r *LeagueStandingRepository) ListByLeagueSeason(ctx context.Context, leagueID, season string) ([]leaguestanding.Standing, error) {
	query, args, err := qb.Select(standingColumns...).From("standings").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
		).
		OrderBy("position", "points DESC", "goal_difference DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []leagueStandingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("list standings", err)
	}

	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueStandingRepository) UpsertMany(ctx context.Context, standings []leaguestanding.Standing) error {
	if len(standings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDBError("begin tx upsert standings", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range standings {
		insertModel := leagueStandingInsertModel{
			LeagueID:       item.LeagueID,
			Season:         item.Season,
			TeamName:       item.TeamName,
			Position:       item.Position,
			Played:         item.Played,
			Wins:           item.Wins,
			Draws:          item.Draws,
			Losses:         item.Losses,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
			GoalDifference: item.GoalDifference,
			Points:         item.Points,
		}
		query, args, err := qb.InsertModel("standings", insertModel, `ON CONFLICT (league_id, season, team_name) DO UPDATE SET
    position = EXCLUDED.position,
    played = EXCLUDED.played,
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    goal_difference = EXCLUDED.goal_difference,
    points = EXCLUDED.points`)
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapDBError(fmt.Sprintf("upsert standing league=%s season=%s team=%s", item.LeagueID, item.Season, item.TeamName), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError("commit upsert standings tx", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context, filter league.Filter) ([]league.League, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(leagueConditions(filter)...).
		OrderBy("country", "league_name").
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("select leagues", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, wrapDBError("get league by id", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	insertModel := leagueInsertModel{
		LeagueID: item.ID,
		Name:     item.Name,
		Country:  item.Country,
	}
	query, args, err := qb.InsertModel("leagues", insertModel, "ON CONFLICT (league_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build upsert league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(fmt.Sprintf("upsert league id=%s", item.ID), err)
	}
	return nil
}

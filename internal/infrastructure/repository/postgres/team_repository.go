package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/internal/domain/team"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	query, args, err := teamListQuery(filter).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("select teams", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Count(ctx context.Context, filter team.Filter) (int, error) {
	query, args, err := teamListQuery(filter).CountSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, wrapDBError("count teams", err)
	}
	return total, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, wrapDBError("get team by id", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) (int64, error) {
	insertModel := teamInsertModel{
		Name:     item.Name,
		LeagueID: item.LeagueID,
		Season:   item.Season,
	}
	query, args, err := qb.InsertModel("teams", insertModel, "ON CONFLICT (team_name, league_id, season) DO NOTHING RETURNING team_id")
	if err != nil {
		return 0, fmt.Errorf("build upsert team query: %w", err)
	}

	var teamID int64
	err = r.db.GetContext(ctx, &teamID, query, args...)
	if err == nil {
		return teamID, nil
	}
	if !isNotFound(err) {
		return 0, wrapDBError(fmt.Sprintf("upsert team name=%s", item.Name), err)
	}

	// Conflict: the row already exists and RETURNING produced nothing.
	lookup, lookupArgs, err := qb.Select("team_id").From("teams").
		Where(
			qb.Eq("team_name", item.Name),
			qb.Eq("league_id", item.LeagueID),
			qb.Eq("season", item.Season),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build lookup team query: %w", err)
	}
	if err := r.db.GetContext(ctx, &teamID, lookup, lookupArgs...); err != nil {
		return 0, wrapDBError(fmt.Sprintf("lookup team name=%s", item.Name), err)
	}
	return teamID, nil
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-data-api/internal/domain/match"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	query, args, err := matchListQuery(filter).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("select matches", err)
	}

	return matchRowsToDomain(rows), nil
}

func (r *MatchRepository) Count(ctx context.Context, filter match.Filter) (int, error) {
	query, args, err := matchListQuery(filter).CountSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, wrapDBError("count matches", err)
	}
	return total, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, wrapDBError("get match by id", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListStats(ctx context.Context, matchID string) ([]match.Stat, error) {
	query, args, err := qb.Select(matchStatColumns...).From("match_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match stats query: %w", err)
	}

	var rows []matchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("select match stats", err)
	}

	out := make([]match.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) ListSeasons(ctx context.Context, leagueID string) ([]string, error) {
	query, args, err := qb.Select("season").Distinct().From("matches").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("season DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var seasons []string
	if err := r.db.SelectContext(ctx, &seasons, query, args...); err != nil {
		return nil, wrapDBError("select seasons", err)
	}
	if seasons == nil {
		seasons = []string{}
	}
	return seasons, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, leagueID, season, teamName string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
			qb.Or(qb.Eq("home_team", teamName), qb.Eq("away_team", teamName)),
		).
		OrderBy("match_date", "match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by team query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError("select matches by team", err)
	}

	return matchRowsToDomain(rows), nil
}

func (r *MatchRepository) Upsert(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", newMatchInsertModel(item), `ON CONFLICT (match_id) DO UPDATE SET
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    status = EXCLUDED.status`)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(fmt.Sprintf("upsert match id=%s", item.ID), err)
	}
	return nil
}

func (r *MatchRepository) UpsertStats(ctx context.Context, matchID string, stats []match.Stat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapDBError("begin tx upsert match stats", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range stats {
		statType := strings.TrimSpace(item.Type)
		if statType == "" {
			continue
		}
		insertModel := matchStatInsertModel{
			MatchID:   matchID,
			StatType:  statType,
			HomeValue: nullString(item.HomeValue),
			AwayValue: nullString(item.AwayValue),
		}
		query, args, err := qb.InsertModel("match_stats", insertModel, `ON CONFLICT (match_id, stat_type) DO UPDATE SET
    home_value = EXCLUDED.home_value,
    away_value = EXCLUDED.away_value`)
		if err != nil {
			return fmt.Errorf("build upsert match stat query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapDBError(fmt.Sprintf("upsert match stat match=%s type=%s", matchID, statType), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError("commit upsert match stats tx", err)
	}
	return nil
}

func matchRowsToDomain(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

package postgres

import (
	"github.com/riskibarqy/football-data-api/internal/domain/match"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

func matchConditions(filter match.Filter) []qb.Condition {
	var conds []qb.Condition
	if filter.LeagueID != "" {
		conds = append(conds, qb.Eq("league_id", filter.LeagueID))
	}
	if filter.Season != "" {
		conds = append(conds, qb.Eq("season", filter.Season))
	}
	if filter.Team != "" {
		conds = append(conds, qb.Or(
			qb.ILike("home_team", filter.Team),
			qb.ILike("away_team", filter.Team),
		))
	}
	if filter.DateFrom != nil {
		conds = append(conds, qb.Gte("match_date", filter.DateFrom.Format(match.DateLayout)))
	}
	if filter.DateTo != nil {
		conds = append(conds, qb.Lte("match_date", filter.DateTo.Format(match.DateLayout)))
	}
	return conds
}

func matchListQuery(filter match.Filter) *qb.SelectBuilder {
	filter = filter.Normalize()
	return qb.Select(matchColumns...).From("matches").
		Where(matchConditions(filter)...).
		OrderBy("match_date DESC NULLS LAST", "match_time DESC NULLS LAST", "match_id").
		Limit(filter.Limit).
		Offset(filter.Offset)
}

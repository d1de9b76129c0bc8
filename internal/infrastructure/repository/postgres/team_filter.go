package postgres

import (
	"github.com/riskibarqy/football-data-api/internal/domain/team"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

func teamConditions(filter team.Filter) []qb.Condition {
	var conds []qb.Condition
	if filter.LeagueID != "" {
		conds = append(conds, qb.Eq("league_id", filter.LeagueID))
	}
	if filter.Season != "" {
		conds = append(conds, qb.Eq("season", filter.Season))
	}
	if filter.Search != "" {
		conds = append(conds, qb.ILike("team_name", filter.Search))
	}
	return conds
}

func teamListQuery(filter team.Filter) *qb.SelectBuilder {
	filter = filter.Normalize()
	return qb.Select(teamColumns...).From("teams").
		Where(teamConditions(filter)...).
		OrderBy("team_name", "team_id").
		Limit(filter.Limit).
		Offset(filter.Offset)
}

package postgres

import (
	"strings"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	qb "github.com/riskibarqy/football-data-api/internal/platform/querybuilder"
)

func leagueConditions(filter league.Filter) []qb.Condition {
	var conds []qb.Condition
	if country := strings.TrimSpace(filter.Country); country != "" {
		conds = append(conds, qb.Eq("country", country))
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		conds = append(conds, qb.ILike("league_name", name))
	}
	return conds
}

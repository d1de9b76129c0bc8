package scraper

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-data-api/internal/domain/league"
	"github.com/riskibarqy/football-data-api/internal/usecase"
)

// FetchMatches returns every match listed on the season results page. Match
// detail pages are best effort: a failed detail fetch keeps the summary row.
func (c *Client) FetchMatches(ctx context.Context, lg league.League, season string) ([]usecase.ExternalMatch, error) {
	body, err := c.get(ctx, seasonPath(lg, season, "results"))
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch results league=%s season=%s", lg.ID, season)
	}

	items, err := parseResults(body)
	if err != nil {
		return nil, crerr.Wrapf(err, "league=%s season=%s", lg.ID, season)
	}

	for i := range items {
		item := &items[i]
		if item.ID == "" || item.Status != statusFinished {
			continue
		}

		detail, err := c.get(ctx, "/match/"+item.ID+"/")
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.DebugContext(ctx, "skip match detail", "match_id", item.ID, "error", err)
			continue
		}
		if err := parseMatchDetail(detail, item); err != nil {
			c.logger.DebugContext(ctx, "skip match detail", "match_id", item.ID, "error", err)
		}
	}

	c.logger.InfoContext(ctx, "fetched results page", "league_id", lg.ID, "season", season, "matches", len(items))
	return items, nil
}

func (c *Client) FetchTable(ctx context.Context, lg league.League, season string) ([]usecase.ExternalStanding, error) {
	body, err := c.get(ctx, seasonPath(lg, season, "standings"))
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch standings league=%s season=%s", lg.ID, season)
	}

	rows, err := parseStandings(body)
	if err != nil {
		return nil, crerr.Wrapf(err, "league=%s season=%s", lg.ID, season)
	}
	return rows, nil
}

func seasonPath(lg league.League, season, page string) string {
	slug := strings.ReplaceAll(strings.ToLower(lg.ID), "_", "-")
	return fmt.Sprintf("/football/%s/%s-%s/%s/", strings.ToLower(lg.Country), slug, season, page)
}

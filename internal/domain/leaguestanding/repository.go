package leaguestanding

import "context"

type Repository interface {
	// ListByLeagueSeason returns the table ordered by position.
	ListByLeagueSeason(ctx context.Context, leagueID, season string) ([]Standing, error)
	// UpsertMany writes every row keyed by league, season and team name.
	UpsertMany(ctx context.Context, standings []Standing) error
}

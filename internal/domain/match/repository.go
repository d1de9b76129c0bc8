package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	Count(ctx context.Context, filter Filter) (int, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListStats(ctx context.Context, matchID string) ([]Stat, error)
	// ListSeasons returns the distinct seasons with matches, newest first.
	ListSeasons(ctx context.Context, leagueID string) ([]string, error)
	// ListByTeam returns every match of a league season where teamName is
	// exactly the home or away side.
	ListByTeam(ctx context.Context, leagueID, season, teamName string) ([]Match, error)
	// Upsert inserts a match or, when it exists, refreshes scores and status only.
	Upsert(ctx context.Context, item Match) error
	UpsertStats(ctx context.Context, matchID string, stats []Stat) error
}

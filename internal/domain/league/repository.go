package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	// Upsert inserts the league and leaves an existing row untouched.
	Upsert(ctx context.Context, item League) error
}

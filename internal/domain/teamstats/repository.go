package teamstats

import "context"

// Repository stores the rebuildable team_stats cache.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Stats, error)
	Upsert(ctx context.Context, item Stats) error
}

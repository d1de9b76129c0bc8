package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	Count(ctx context.Context, filter Filter) (int, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	// Upsert inserts the team when missing and returns its id either way.
	Upsert(ctx context.Context, item Team) (int64, error)
}

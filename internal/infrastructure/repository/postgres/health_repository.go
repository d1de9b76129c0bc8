package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type HealthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping round-trips a trivial query so a broken pool is reported even when
// idle connections still look alive.
func (r *HealthRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return wrapDBError("ping database", err)
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"time"
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type HealthReport struct {
	Status    string
	Database  string
	Timestamp time.Time
}

type HealthService struct {
	pinger DatabasePinger
	now    func() time.Time
}

func NewHealthService(pinger DatabasePinger) *HealthService {
	return &HealthService{
		pinger: pinger,
		now:    time.Now,
	}
}

// Check always returns a report; the error is non-nil when the database
// cannot be reached and wraps ErrDependencyUnavailable.
func (s *HealthService) Check(ctx context.Context) (HealthReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HealthService.Check")
	defer span.End()

	report := HealthReport{
		Status:    HealthStatusHealthy,
		Database:  DatabaseConnected,
		Timestamp: s.now().UTC(),
	}
	if err := s.pinger.Ping(ctx); err != nil {
		report.Status = HealthStatusUnhealthy
		report.Database = DatabaseDisconnected
		return report, fmt.Errorf("%w: ping database: %w", ErrDependencyUnavailable, err)
	}

	return report, nil
}

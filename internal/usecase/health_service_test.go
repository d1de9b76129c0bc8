package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	healthy := NewHealthService(stubPinger{})
	healthy.now = func() time.Time { return fixed }
	report, err := healthy.Check(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if report.Status != HealthStatusHealthy || report.Database != DatabaseConnected || !report.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected report: %+v", report)
	}

	down := NewHealthService(stubPinger{err: errors.New("dial tcp: connection refused")})
	report, err = down.Check(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if report.Status != HealthStatusUnhealthy || report.Database != DatabaseDisconnected {
		t.Fatalf("unexpected report: %+v", report)
	}
}

package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, openTimeout time.Duration) (*Breaker, *time.Time) {
	b := NewBreaker(BreakerConfig{FailureThreshold: threshold, OpenTimeout: openTimeout, HalfOpenMaxReq: 1})
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreaker_Transitions(t *testing.T) {
	b, now := newTestBreaker(2, 5*time.Second)

	var changes []string
	b.OnStateChange(func(from, to State) {
		changes = append(changes, string(from)+"->"+string(to))
	})

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	b.RecordFailure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}
	b.RecordSuccess()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}

	want := []string{"closed->open", "open->half_open", "half_open->closed"}
	if len(changes) != len(want) {
		t.Fatalf("unexpected transitions: %v", changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Fatalf("unexpected transitions: %v", changes)
		}
	}
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Second)

	b.RecordFailure()
	*now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestBreaker_DoClassifiesErrors(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute)
	notFound := errors.New("not found")
	ignoreNotFound := func(err error) bool { return !errors.Is(err, notFound) }

	err := b.Do(context.Background(), func(context.Context) error { return notFound }, ignoreNotFound)
	if !errors.Is(err, notFound) {
		t.Fatalf("expected upstream error to pass through, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("ignored errors must not trip the breaker, got %s", state)
	}

	_ = b.Do(context.Background(), func(context.Context) error { return errors.New("502") }, ignoreNotFound)
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after counted failure, got %s", state)
	}

	called := false
	err = b.Do(context.Background(), func(context.Context) error { called = true; return nil }, nil)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected open breaker to short-circuit, err=%v called=%v", err, called)
	}
}

func TestNormalizeBreakerConfig(t *testing.T) {
	got := NormalizeBreakerConfig(BreakerConfig{})
	if got != DefaultBreakerConfig() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

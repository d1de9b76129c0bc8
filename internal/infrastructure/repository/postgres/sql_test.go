package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/football-data-api/internal/usecase"
)

func TestWrapDBError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "bad conn", err: driver.ErrBadConn, unavailable: true},
		{name: "conn done", err: sql.ErrConnDone, unavailable: true},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), unavailable: true},
		{name: "connection exception class", err: &pq.Error{Code: "08006"}, unavailable: true},
		{name: "admin shutdown", err: &pq.Error{Code: "57P01"}, unavailable: true},
		{name: "too many connections", err: &pq.Error{Code: "53300"}, unavailable: true},
		{name: "dial failure", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, unavailable: true},
		{name: "syntax error", err: &pq.Error{Code: "42601"}, unavailable: false},
		{name: "plain error", err: errors.New("boom"), unavailable: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapDBError("list matches", tc.err)
			if !errors.Is(got, tc.err) {
				t.Fatalf("wrapped error must keep cause: %v", got)
			}
			if errors.Is(got, usecase.ErrDependencyUnavailable) != tc.unavailable {
				t.Fatalf("unexpected dependency classification for %v: %v", tc.err, got)
			}
		})
	}

	if wrapDBError("noop", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("other")) {
		t.Fatalf("expected other error to not be not found")
	}
}

func TestNullableHelpers(t *testing.T) {
	if nullString("").Valid {
		t.Fatalf("empty string must be NULL")
	}
	if v := nullString("x"); !v.Valid || v.String != "x" {
		t.Fatalf("unexpected null string: %+v", v)
	}

	three := 3
	if v := nullInt(&three); !v.Valid || v.Int64 != 3 {
		t.Fatalf("unexpected null int: %+v", v)
	}
	if nullInt(nil).Valid {
		t.Fatalf("nil int must be NULL")
	}
	if got := nullInt64ToIntPtr(sql.NullInt64{Int64: 5, Valid: true}); got == nil || *got != 5 {
		t.Fatalf("unexpected int ptr: %v", got)
	}
	if nullInt64ToIntPtr(sql.NullInt64{}) != nil {
		t.Fatalf("expected nil ptr for NULL")
	}

	now := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := nullTimeToTimePtr(nullTime(&now)); got == nil || !got.Equal(now) {
		t.Fatalf("unexpected time roundtrip: %v", got)
	}
	if nullTimeToTimePtr(nullTime(nil)) != nil {
		t.Fatalf("expected nil time for NULL")
	}
}

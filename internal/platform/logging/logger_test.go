package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := sonic.UnmarshalString(line, &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestLoggerWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).Named("populate").With("league_id", "la_liga")

	logger.Info("season stored", "season", "2023-2024", "matches", 380)
	logger.Debug("hidden")
	logger.Error("write failed", "error", errors.New("boom"))

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first["msg"] != "season stored" || first["logger"] != "populate" {
		t.Fatalf("unexpected entry: %+v", first)
	}
	if first["league_id"] != "la_liga" || first["season"] != "2023-2024" {
		t.Fatalf("missing fields: %+v", first)
	}
	if first["level"] != "info" {
		t.Fatalf("unexpected level: %v", first["level"])
	}
	if caller, _ := first["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("caller should point at the call site, got %q", caller)
	}
	if entries[1]["error"] != "boom" {
		t.Fatalf("unexpected error field: %+v", entries[1])
	}
}

func TestLoggerOddArgs(t *testing.T) {
	var buf bytes.Buffer
	New(LevelInfo, &buf).Info("odd", 42, "x", "dangling")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if _, ok := entries[0]["arg"]; !ok {
		t.Fatalf("expected non-string key to be renamed to arg: %+v", entries[0])
	}
	if v, ok := entries[0]["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key with null value: %+v", entries[0])
	}
}

func TestLoggerContextAddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "with trace")
	logger.InfoContext(context.Background(), "without trace")

	entries := decodeLines(t, &buf)
	if entries[0]["trace_id"] != traceID.String() || entries[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %+v", entries[0])
	}
	if _, ok := entries[1]["trace_id"]; ok {
		t.Fatalf("unexpected trace field: %+v", entries[1])
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New(LevelInfo, &buf))
	t.Cleanup(func() { SetDefault(prev) })

	var logger *Logger
	logger.Warn("from nil")

	if !strings.Contains(buf.String(), "from nil") {
		t.Fatalf("expected nil logger to write through default, got %q", buf.String())
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}

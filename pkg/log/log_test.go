package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"zenned/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q, want empty", got)
	}
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewZapAdapter(zap.New(core))
	ctx := log.WithRequestID(context.Background(), "abc")

	t.Run("key value pairs", func(t *testing.T) {
		l.Info(ctx, "import finished", "created", 3, "failed", 0)

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		e := entries[0]
		if e.Message != "import finished" {
			t.Errorf("message = %q", e.Message)
		}
		fm := e.ContextMap()
		if fm["request_id"] != "abc" {
			t.Errorf("request_id = %v", fm["request_id"])
		}
		if fm["created"] != int64(3) {
			t.Errorf("created = %v (%T)", fm["created"], fm["created"])
		}
	})

	t.Run("concatenated args", func(t *testing.T) {
		l.Error(ctx, "Failed to run server: ", "boom")

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Message != "Failed to run server: boom" {
			t.Errorf("message = %q", entries[0].Message)
		}
	})

	t.Run("formatted", func(t *testing.T) {
		l.Warnf(ctx, "rate limit exceeded for %s", "user:1")

		entries := logs.TakeAll()
		if len(entries) != 1 || entries[0].Message != "rate limit exceeded for user:1" {
			t.Fatalf("unexpected entries: %+v", entries)
		}
	})
}

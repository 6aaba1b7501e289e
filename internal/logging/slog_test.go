package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufferedSlog(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_AllLevels(t *testing.T) {
	log, buf := newBufferedSlog(t)
	ctx := context.Background()

	log.Debug(ctx, "fetch started", "slice", "users")
	log.Info(ctx, "fetch done", "count", 3)
	log.Warn(ctx, "fetch rejected", "status", 500)
	log.Error(ctx, "storage failed", "key", "token")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=\"fetch started\"", "slice=users",
		"level=INFO", "count=3",
		"level=WARN", "status=500",
		"level=ERROR", "key=token",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSlogLogger_WithKeepsParentUntouched(t *testing.T) {
	log, buf := newBufferedSlog(t)
	ctx := context.Background()

	child := log.With("request_id", "r-1")
	child.Info(ctx, "child")
	log.Info(ctx, "parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "request_id=r-1") {
		t.Fatalf("child line misses attribute: %s", lines[0])
	}
	if strings.Contains(lines[1], "request_id") {
		t.Fatalf("parent line must not carry child attribute: %s", lines[1])
	}
}

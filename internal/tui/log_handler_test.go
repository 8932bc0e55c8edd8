package tui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestLogHandlerEnabled(t *testing.T) {
	handler := NewLogHandler(slog.LevelWarn)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info to be below the handler level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected error to be enabled")
	}
}

func TestLogHandlerSummarize(t *testing.T) {
	handler := NewLogHandler(slog.LevelWarn).
		WithAttrs([]slog.Attr{slog.String("component", "shell")}).
		WithGroup("dispatch").(*LogHandler)

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "message ignored", 0)
	record.AddAttrs(slog.String("reason", "card already rated"))

	want := "message ignored (component=shell, dispatch.reason=card already rated)"
	if got := handler.summarize(record); got != want {
		t.Errorf("Expected %q, but got %q", want, got)
	}

	bare := slog.NewRecord(time.Now(), slog.LevelWarn, "plain", 0)
	if got := NewLogHandler(slog.LevelWarn).summarize(bare); got != "plain" {
		t.Errorf("Expected %q, but got %q", "plain", got)
	}
}

func TestLogHandlerWithoutProgram(t *testing.T) {
	logger := slog.New(NewLogHandler(slog.LevelWarn))
	// Records before SetProgram are dropped without blocking.
	logger.Warn("too early")
}

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFanoutHandler(t *testing.T) {
	var warnings, everything bytes.Buffer
	logger := slog.New(fanoutHandler{
		slog.NewTextHandler(&warnings, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&everything, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}).With("component", "test")

	logger.Debug("dispatched")
	logger.Warn("message ignored")

	if strings.Contains(warnings.String(), "dispatched") {
		t.Error("Expected the warn handler to drop debug records")
	}
	if !strings.Contains(warnings.String(), "message ignored") {
		t.Error("Expected the warn handler to receive warnings")
	}
	for _, want := range []string{"dispatched", "message ignored", "component=test"} {
		if !strings.Contains(everything.String(), want) {
			t.Errorf("Expected %q in the debug handler output", want)
		}
	}
}

func TestFanoutHandlerEnabled(t *testing.T) {
	handler := fanoutHandler{slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError})}
	if handler.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("Expected warn to be disabled")
	}
	if !handler.Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected error to be enabled")
	}
}

func TestOpenFileLogHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashcards.log")
	handler, closeFile, err := openFileLogHandler(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("openFileLogHandler() returned an unexpected error: %v", err)
	}
	slog.New(handler).Info("decks loaded", "cards", 3)
	closeFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("Expected a JSON record, got %q: %v", data, err)
	}
	if record["msg"] != "decks loaded" || record["cards"] != float64(3) {
		t.Errorf("Expected the logged record, got %v", record)
	}
}

func TestRunHelp(t *testing.T) {
	if err := run([]string{"--help"}); err != nil {
		t.Errorf("Expected --help to exit cleanly, got %v", err)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	if err := run([]string{"--log-level", "loud"}); err == nil {
		t.Error("Expected an invalid log level to fail")
	}
}

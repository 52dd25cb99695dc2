package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewJSONLoggerWritesParseableRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("presence updated", String("track", "Song A"), Int("attempt", 1))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("unmarshal log record: %v", err)
	}
	if record["msg"] != "presence updated" {
		t.Fatalf("unexpected msg field: %v", record["msg"])
	}
	if record["track"] != "Song A" {
		t.Fatalf("unexpected track field: %v", record["track"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level field: %v", record["level"])
	}
}

func TestConsoleHandlerIncludesComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	NewComponentLogger(logger, "watcher").Info("tick complete", Bool("playing", true))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "[watcher]") {
		t.Fatalf("expected component tag in output, got %q", line)
	}
	if !strings.Contains(line, "playing=true") {
		t.Fatalf("expected attr in output, got %q", line)
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if parseLevel("") != slog.LevelInfo {
		t.Fatal("empty level should default to info")
	}
	if parseLevel("DEBUG") != slog.LevelDebug {
		t.Fatal("level parsing should be case-insensitive")
	}
	if parseLevel("bogus") != slog.LevelInfo {
		t.Fatal("unknown level should default to info")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should report disabled at every level")
	}
}

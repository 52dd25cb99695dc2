package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"musicord/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("DISCORD_CLIENT_ID", "")
	t.Setenv("TMPDIR", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "musicord")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Discord.ClientID != config.Default().Discord.ClientID {
		t.Fatalf("unexpected client id: %q", cfg.Discord.ClientID)
	}
	if cfg.Discord.SocketScanCount != 10 {
		t.Fatalf("unexpected socket scan count: %d", cfg.Discord.SocketScanCount)
	}
	if cfg.Discord.RuntimeDir != "/tmp/" {
		t.Fatalf("expected /tmp/ runtime dir fallback, got %q", cfg.Discord.RuntimeDir)
	}
	if cfg.Discord.MaxPacketBytes != 1<<20 {
		t.Fatalf("unexpected max packet bytes: %d", cfg.Discord.MaxPacketBytes)
	}
	if cfg.Watch.PollInterval != 1 {
		t.Fatalf("unexpected poll interval: %d", cfg.Watch.PollInterval)
	}
	if !cfg.Artwork.Enabled {
		t.Fatal("expected artwork lookup enabled by default")
	}
	if cfg.TrackLinks.ButtonLabel != "Listen on Apple Music" {
		t.Fatalf("unexpected button label: %q", cfg.TrackLinks.ButtonLabel)
	}
}

func TestLoadHonoursEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DISCORD_CLIENT_ID", "42424242")
	t.Setenv("TMPDIR", "/var/folders/zz/discord")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Discord.ClientID != "42424242" {
		t.Fatalf("expected client id from env, got %q", cfg.Discord.ClientID)
	}
	if cfg.Discord.RuntimeDir != "/var/folders/zz/discord" {
		t.Fatalf("expected runtime dir from TMPDIR, got %q", cfg.Discord.RuntimeDir)
	}
}

func TestLoadParsesConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DISCORD_CLIENT_ID", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		`[discord]`,
		`client_id = "123456"`,
		`socket_scan_count = 3`,
		``,
		`[watch]`,
		`poll_interval = 5`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Discord.ClientID != "123456" {
		t.Fatalf("unexpected client id: %q", cfg.Discord.ClientID)
	}
	if cfg.Discord.SocketScanCount != 3 {
		t.Fatalf("unexpected scan count: %d", cfg.Discord.SocketScanCount)
	}
	if cfg.Watch.PollInterval != 5 {
		t.Fatalf("unexpected poll interval: %d", cfg.Watch.PollInterval)
	}
}

func TestValidateRejectsNonNumericClientID(t *testing.T) {
	cfg := config.Default()
	cfg.Discord.ClientID = "abc123"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-numeric client id")
	}
}

func TestValidateRejectsEmptyClientID(t *testing.T) {
	cfg := config.Default()
	cfg.Discord.ClientID = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty client id")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DISCORD_CLIENT_ID", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample config returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Discord.ClientID == "" {
		t.Fatal("sample config should carry a client id")
	}
}

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zwiftstate.yaml")

	content := `install_dir: /opt/zwift
log_file: /data/Log.txt
overrides:
  game_version: "1.83.0"
  world_id: 2
  flag_id: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if cfg.InstallDir != "/opt/zwift" {
		t.Errorf("InstallDir = %q, want /opt/zwift", cfg.InstallDir)
	}
	if cfg.LogFile != "/data/Log.txt" {
		t.Errorf("LogFile = %q, want /data/Log.txt", cfg.LogFile)
	}
	if cfg.Overrides.GameVersion == nil || *cfg.Overrides.GameVersion != "1.83.0" {
		t.Errorf("Overrides.GameVersion = %v, want 1.83.0", cfg.Overrides.GameVersion)
	}
	if cfg.Overrides.WorldID == nil || *cfg.Overrides.WorldID != 2 {
		t.Errorf("Overrides.WorldID = %v, want 2", cfg.Overrides.WorldID)
	}
	// Explicit zero must survive as a set value, not "absent"
	if cfg.Overrides.FlagID == nil || *cfg.Overrides.FlagID != 0 {
		t.Errorf("Overrides.FlagID = %v, want explicit 0", cfg.Overrides.FlagID)
	}
	// Omitted key stays nil
	if cfg.Overrides.PlayerID != nil {
		t.Errorf("Overrides.PlayerID = %v, want nil", cfg.Overrides.PlayerID)
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/zwiftstate.yaml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("overrides: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFileConfig(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("LoadFileConfig() error = %v, want parse error", err)
	}
}

func TestFileConfig_Options(t *testing.T) {
	var cfg FileConfig
	cfg.Overrides.WorldID = uptr(7)
	cfg.Overrides.FlagID = uptr(0)

	m := zwiftstate.New(cfg.Options()...)
	ctx := context.Background()

	if got := m.WorldID(ctx); got != 7 {
		t.Errorf("WorldID() = %d, want 7", got)
	}
	if got := m.CourseID(ctx); got != 11 {
		t.Errorf("CourseID() = %d, want 11", got)
	}
	if id, ok := m.FlagID(ctx); !ok || id != 0 {
		t.Errorf("FlagID() = %d, %v; want 0, true", id, ok)
	}
}

func TestFileConfig_Options_Empty(t *testing.T) {
	var cfg FileConfig
	if opts := cfg.Options(); len(opts) != 0 {
		t.Errorf("Options() on zero config returned %d options, want 0", len(opts))
	}
}

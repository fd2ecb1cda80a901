// ABOUTME: Tests for configuration loading
// ABOUTME: Verifies defaults, explicit files, and value clamping
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Point the explicit path at a file that does not exist; defaults apply
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.TickMs != DefaultTickMs {
		t.Errorf("expected tick %d, got %d", DefaultTickMs, cfg.TickMs)
	}
	if cfg.Volume != DefaultVolume {
		t.Errorf("expected volume %d, got %d", DefaultVolume, cfg.Volume)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("expected log file %q, got %q", DefaultLogFile, cfg.LogFile)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "tick_ms = 50\nvolume = 40\nlog_file = \"/tmp/aud.log\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.TickMs != 50 {
		t.Errorf("expected tick 50, got %d", cfg.TickMs)
	}
	if cfg.Volume != 40 {
		t.Errorf("expected volume 40, got %d", cfg.Volume)
	}
	if cfg.LogFile != "/tmp/aud.log" {
		t.Errorf("expected log file /tmp/aud.log, got %q", cfg.LogFile)
	}
}

func TestLoadClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "tick_ms = -5\nvolume = 250\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.TickMs != DefaultTickMs {
		t.Errorf("expected clamped tick %d, got %d", DefaultTickMs, cfg.TickMs)
	}
	if cfg.Volume != 100 {
		t.Errorf("expected clamped volume 100, got %d", cfg.Volume)
	}
}

func TestLoadBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tick_ms = = 5"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid toml, got nil")
	}
}

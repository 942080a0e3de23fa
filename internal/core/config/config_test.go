// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     config
// Description: Tests for TOML configuration loading
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gcalc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "gCalc" {
		t.Errorf("General.Name = %q, want gCalc", cfg.General.Name)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %q, want info", cfg.General.LogLevel)
	}
	if cfg.REPL.Prompt != ">> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, ">> ")
	}
	if cfg.History.Limit != 0 {
		t.Errorf("History.Limit = %d, want 0", cfg.History.Limit)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[general]
name = "testcalc"
log_level = "debug"
log_file = "/tmp/gcalc.log"

[repl]
prompt = "calc> "
no_color = true

[history]
limit = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "testcalc" {
		t.Errorf("General.Name = %q, want testcalc", cfg.General.Name)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %q, want debug", cfg.General.LogLevel)
	}
	if cfg.REPL.Prompt != "calc> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "calc> ")
	}
	if !cfg.REPL.NoColor {
		t.Error("REPL.NoColor = false, want true")
	}
	if cfg.History.Limit != 50 {
		t.Errorf("History.Limit = %d, want 50", cfg.History.Limit)
	}

	// Defaults fill in what the file omits.
	if cfg.REPL.Welcome == "" {
		t.Error("REPL.Welcome should get a default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/gcalc.toml"); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "not [valid toml ===")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid TOML")
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, `
[general]
name = "envcalc"
`)
	t.Setenv("GCALC_CONFIG", path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "envcalc" {
		t.Errorf("General.Name = %q, want envcalc", cfg.General.Name)
	}
}

func TestLoadFromEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv("GCALC_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "gCalc" {
		t.Errorf("General.Name = %q, want built-in default", cfg.General.Name)
	}
}

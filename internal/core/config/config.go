// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     config
// Description: TOML configuration loading for gCalc
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	REPL    REPLConfig    `toml:"repl"`
	History HistoryConfig `toml:"history"`
}

// GeneralConfig holds general application settings.
type GeneralConfig struct {
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// REPLConfig holds settings for the interactive shell.
type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	Welcome string `toml:"welcome"`
	NoColor bool   `toml:"no_color"`
}

// HistoryConfig holds settings for the session history.
type HistoryConfig struct {
	// Limit caps the number of retained calculations; 0 means unbounded.
	Limit int `toml:"limit"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from the GCALC_CONFIG environment variable,
// falling back to default locations and finally to built-in defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("GCALC_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./gcalc.toml",
			"./configs/gcalc.toml",
			filepath.Join(os.Getenv("HOME"), ".config/gcalc/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "gCalc"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.Welcome == "" {
		c.REPL.Welcome = "Welcome to the gCalc interactive calculator!"
	}

	if c.History.Limit < 0 {
		c.History.Limit = 0
	}
}

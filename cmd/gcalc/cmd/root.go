// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: Root command and shared CLI setup
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/gcalc/internal/core/config"
	"github.com/msto63/gcalc/internal/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gcalc",
	Short: "gCalc - interactive terminal calculator",
	Long: `gCalc is an interactive calculator for the terminal.

Without a subcommand it starts the interactive shell. Calculations follow
the shape <operation> <num1> <num2>; the built-in operations are add,
subtract, multiply and divide.

Commands:
  repl     - start the interactive shell (default)
  eval     - evaluate a single calculation and exit
  ops      - list the registered operations
  version  - print version information`,
	RunE: runREPL,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gcalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration from --config or the default locations.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newLogger builds the logger prescribed by the configuration. When a log
// file is configured it receives all output; otherwise logs are discarded so
// the TUI stays clean. --verbose forces debug level.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = log.LevelDebug
	}

	if cfg.General.LogFile == "" {
		return log.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(os.ExpandEnv(cfg.General.LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithConfig(log.Config{Level: level, Output: f, Name: "gcalc"})
	return logger, func() { f.Close() }, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}

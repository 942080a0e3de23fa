// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive calculator shell
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/gcalc/internal/tui/calculator"
)

var replNoColor bool

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell"},
	Short:   "Start the interactive calculator shell",
	Long: `Starts the interactive calculator shell.

Calculations follow the shape <operation> <num1> <num2>:

  add 10 5
  subtract 15.5 3.2
  multiply 7 8
  divide 20 4

Special commands:
  help      Display usage instructions
  history   Show the session's calculations
  clear     Clear the transcript
  exit      Leave the shell

Key bindings:
  Enter     Evaluate the current line
  Ctrl+L    Clear the transcript
  Ctrl+C    Exit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoColor, "no-color", false, "disable colored output")
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	logger, closeLogger, err := newLogger(cfg)
	if err != nil {
		printError("setting up logging", err)
		return err
	}
	defer closeLogger()

	return calculator.Run(calculator.Config{
		Prompt:       cfg.REPL.Prompt,
		Welcome:      cfg.REPL.Welcome,
		NoColor:      cfg.REPL.NoColor || replNoColor,
		HistoryLimit: cfg.History.Limit,
		Logger:       logger,
	})
}

// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: CLI command printing version information
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/gcalc/internal/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

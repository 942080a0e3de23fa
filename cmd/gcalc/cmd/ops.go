// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: CLI command listing the registered operations
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/gcalc/internal/calculation"
)

var opsCmd = &cobra.Command{
	Use:     "ops",
	Aliases: []string{"operations"},
	Short:   "List the registered operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range calculation.Default().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

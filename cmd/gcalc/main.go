// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     main
// Description: Entry point for the gcalc binary
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/gcalc/cmd/gcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

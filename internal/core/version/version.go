// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     version
// Description: Central version management for gCalc
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version information, overridable at build time via -ldflags.
var (
	// Version is the semantic version of the gcalc binary.
	Version = "1.0.0"

	// Commit is the git commit the binary was built from.
	Commit = "dev"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version with commit and build date.
func Full() string {
	return fmt.Sprintf("gcalc %s (commit %s, built %s)", Version, Commit, BuildDate)
}

// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     version
// Description: Tests for version reporting
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package version

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	for _, want := range []string{"gcalc", Version, Commit} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() = %q, missing %q", full, want)
		}
	}
}

// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     history
// Description: Tests for the session history store
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package history

import (
	"fmt"
	"testing"

	"github.com/msto63/gcalc/internal/calculation"
)

func TestAppendAndEntries(t *testing.T) {
	s := NewStore(0)

	calc := calculation.NewAdd(10.0, 5.0)
	desc, err := calc.Describe()
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	entry := s.Append(calc, desc)

	if entry.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Append() should assign a non-zero ID")
	}
	if entry.Timestamp.IsZero() {
		t.Error("Append() should assign a timestamp")
	}
	if entry.Description != "AddCalculation: 10.0 Add 5.0 = 15.0" {
		t.Errorf("Description = %q", entry.Description)
	}

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	s := NewStore(0)

	for i := 0; i < 5; i++ {
		calc := calculation.NewAdd(float64(i), 1.0)
		s.Append(calc, fmt.Sprintf("entry-%d", i))
	}

	entries := s.Entries()
	if len(entries) != 5 {
		t.Fatalf("Entries() len = %d, want 5", len(entries))
	}
	for i, e := range entries {
		if want := fmt.Sprintf("entry-%d", i); e.Description != want {
			t.Errorf("Entries()[%d].Description = %q, want %q", i, e.Description, want)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := NewStore(0)
	s.Append(calculation.NewAdd(1.0, 2.0), "original")

	entries := s.Entries()
	entries[0].Description = "mutated"

	if s.Entries()[0].Description != "original" {
		t.Error("Entries() must return a copy")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	s := NewStore(3)

	for i := 0; i < 5; i++ {
		s.Append(calculation.NewAdd(float64(i), 0.0), fmt.Sprintf("entry-%d", i))
	}

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() len = %d, want 3", len(entries))
	}
	if entries[0].Description != "entry-2" {
		t.Errorf("oldest retained = %q, want entry-2", entries[0].Description)
	}
	if entries[2].Description != "entry-4" {
		t.Errorf("newest retained = %q, want entry-4", entries[2].Description)
	}
}

func TestClear(t *testing.T) {
	s := NewStore(0)
	s.Append(calculation.NewAdd(1.0, 2.0), "x")
	s.Append(calculation.NewAdd(3.0, 4.0), "y")

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", s.Len())
	}
}

func TestNegativeLimitMeansUnbounded(t *testing.T) {
	s := NewStore(-1)

	for i := 0; i < 10; i++ {
		s.Append(calculation.NewAdd(float64(i), 0.0), "e")
	}

	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}

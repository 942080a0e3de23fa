// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     history
// Description: Session-scoped, append-only calculation history
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

// Package history keeps the ordered list of calculations performed during
// one interactive session. It is owned and mutated by the shell; the
// calculation core never reads or writes it. The history lives in memory
// only and is discarded when the session ends.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/gcalc/internal/calculation"
)

// Entry is one recorded calculation with its rendered description.
type Entry struct {
	ID          uuid.UUID
	Calculation *calculation.Calculation
	Description string
	Timestamp   time.Time
}

// Store is an append-only, order-preserving history. Identity beyond
// insertion order is limited to the entry IDs. A limit of 0 means unbounded;
// a positive limit drops the oldest entries once exceeded.
type Store struct {
	mutex   sync.RWMutex
	entries []Entry
	limit   int
}

// NewStore creates a history store. limit caps the number of retained
// entries; 0 means unbounded.
func NewStore(limit int) *Store {
	if limit < 0 {
		limit = 0
	}
	return &Store{limit: limit}
}

// Append records a calculation with its rendered description.
func (s *Store) Append(calc *calculation.Calculation, description string) Entry {
	entry := Entry{
		ID:          uuid.New(),
		Calculation: calc,
		Description: description,
		Timestamp:   time.Now(),
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries = append(s.entries, entry)
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}

	return entry
}

// Entries returns a copy of all recorded entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.entries)
}

// Clear discards all recorded entries.
func (s *Store) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries = nil
}

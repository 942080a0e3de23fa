// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calculation
// Description: Name-to-constructor registry for calculation variants
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calculation

import (
	"strings"
	"sync"

	"github.com/msto63/gcalc/internal/core/calcerr"
	"github.com/msto63/gcalc/internal/core/log"
)

// Constructor builds a calculation from two operands.
type Constructor func(a, b float64) *Calculation

// Registry maps case-insensitive operation names to constructors.
// Registration order is preserved for listings and error messages. The
// registry is read-mostly after startup; the lock makes concurrent reads
// safe when embedded in a concurrent host.
type Registry struct {
	mutex        sync.RWMutex
	constructors map[string]Constructor
	names        []string
	logger       *log.Logger
}

// NewRegistry creates an empty registry. A nil logger falls back to the
// process default.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Registry{
		constructors: make(map[string]Constructor),
		logger:       logger.WithName("registry"),
	}
}

// Register binds a case-normalized name to a constructor. Registering a name
// twice fails with DUPLICATE_REGISTRATION and leaves the first binding
// intact; duplicate names are a startup error, not a runtime condition to
// tolerate.
func (r *Registry) Register(name string, ctor Constructor) error {
	if strings.TrimSpace(name) == "" {
		return calcerr.New("operation name cannot be empty").
			WithCode(calcerr.CodeInvalidInput)
	}
	if ctor == nil {
		return calcerr.New("operation constructor cannot be nil").
			WithCode(calcerr.CodeInvalidInput)
	}

	key := strings.ToLower(name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.constructors[key]; exists {
		return calcerr.Newf("operation '%s' is already registered", name).
			WithCode(calcerr.CodeDuplicateRegistration).
			WithDetail("operation", key)
	}

	r.constructors[key] = ctor
	r.names = append(r.names, key)

	r.logger.Debug("operation registered", log.Fields{"operation": key})
	return nil
}

// Create case-normalizes name, looks it up and constructs the matching
// calculation holding (a, b). An unknown name fails with
// UNSUPPORTED_OPERATION carrying the rejected name and the currently
// available names in registration order.
func (r *Registry) Create(name string, a, b float64) (*Calculation, error) {
	key := strings.ToLower(name)

	r.mutex.RLock()
	ctor, ok := r.constructors[key]
	available := strings.Join(r.names, ", ")
	r.mutex.RUnlock()

	if !ok {
		return nil, calcerr.Newf("Unsupported operation: '%s'. Available operations: %s", name, available).
			WithCode(calcerr.CodeUnsupportedOperation).
			WithDetail("operation", name).
			WithDetail("available", available)
	}

	return ctor(a, b), nil
}

// Names returns the registered operation names in registration order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.names)
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, populated exactly once with the
// four built-in variants before any lookup can observe it. Initialization is
// explicit here; nothing relies on import-order side effects.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
		mustRegisterBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// mustRegisterBuiltins inserts the built-in variants. A failure here is a
// programming error, so it panics rather than limping on with a partially
// populated registry.
func mustRegisterBuiltins(r *Registry) {
	builtins := []struct {
		name string
		ctor Constructor
	}{
		{"add", NewAdd},
		{"subtract", NewSubtract},
		{"multiply", NewMultiply},
		{"divide", NewDivide},
	}

	for _, b := range builtins {
		if err := r.Register(b.name, b.ctor); err != nil {
			panic(err)
		}
	}
}

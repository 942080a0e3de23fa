// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calculation
// Description: Calculation model and operation registry
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

// Package calculation binds operation-name strings to constructible
// calculation variants and encapsulates per-variant execution and
// formatting.
//
// A Calculation is a one-shot immutable value: a variant from the closed set
// {Add, Subtract, Multiply, Divide} paired with two operands. Execute may be
// invoked repeatedly and is pure. The Registry is a long-lived mapping from
// case-insensitive operation names to constructors, populated explicitly at
// startup; it is read-mostly afterwards and guarded by a lock for embedding
// in concurrent hosts.
package calculation

// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     operation
// Description: Pure arithmetic primitives for the calculator
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

// Package operation provides the four stateless arithmetic primitives the
// calculator is built on. The package is usable standalone, so Divide guards
// against a zero divisor itself regardless of any guard in calling layers.
//
// Operands must be numeric: NaN is the one float64 value that is not a
// number, and every function rejects it with a TYPE_MISMATCH error instead
// of silently propagating it through arithmetic.
package operation

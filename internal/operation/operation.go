// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     operation
// Description: Stateless arithmetic functions with zero-divisor guard
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package operation

import (
	"math"

	"github.com/msto63/gcalc/internal/core/calcerr"
)

// DivisionByZeroMessage is the wording of the library-level zero-divisor
// error. The calculation layer raises its own variant with different wording;
// callers match on which one fired, so neither may change.
const DivisionByZeroMessage = "Division by zero is not allowed."

// TypeMismatchMessage is the wording used when a non-numeric operand reaches
// the library.
const TypeMismatchMessage = "Operands must be numeric."

// checkOperands rejects non-numeric operands. Validation of user input is
// the caller's job; this is the last line of defense against coercion.
func checkOperands(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) {
		return calcerr.New(TypeMismatchMessage).
			WithCode(calcerr.CodeTypeMismatch).
			WithDetail("a", a).
			WithDetail("b", b)
	}
	return nil
}

// Add returns the sum of a and b.
func Add(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns the difference of a and b.
func Subtract(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Divide returns the quotient of a and b. A zero divisor fails with
// DIVISION_BY_ZERO; the guard lives here because the package is usable
// standalone.
func Divide(a, b float64) (float64, error) {
	if err := checkOperands(a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, calcerr.New(DivisionByZeroMessage).
			WithCode(calcerr.CodeDivisionByZero).
			WithDetail("dividend", a)
	}
	return a / b, nil
}

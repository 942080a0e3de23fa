// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calculation
// Description: Immutable calculation value with execution and formatting
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calculation

import (
	"fmt"

	"github.com/msto63/gcalc/internal/core/calcerr"
)

// DivisionByZeroMessage is the wording of the calculation-layer zero-divisor
// error. It deliberately differs from the operation library's wording;
// callers match on which of the two fired, so neither may change.
const DivisionByZeroMessage = "Cannot divide by zero."

// Calculation pairs two operands with a variant. It is created once and
// never mutated; Execute is pure and may be invoked repeatedly.
type Calculation struct {
	variant Variant
	a, b    float64
}

// New creates a calculation of the given variant holding (a, b).
func New(variant Variant, a, b float64) *Calculation {
	return &Calculation{variant: variant, a: a, b: b}
}

// NewAdd creates an addition calculation.
func NewAdd(a, b float64) *Calculation { return New(VariantAdd, a, b) }

// NewSubtract creates a subtraction calculation.
func NewSubtract(a, b float64) *Calculation { return New(VariantSubtract, a, b) }

// NewMultiply creates a multiplication calculation.
func NewMultiply(a, b float64) *Calculation { return New(VariantMultiply, a, b) }

// NewDivide creates a division calculation.
func NewDivide(a, b float64) *Calculation { return New(VariantDivide, a, b) }

// Variant returns the calculation's variant.
func (c *Calculation) Variant() Variant {
	return c.variant
}

// A returns the first operand.
func (c *Calculation) A() float64 {
	return c.a
}

// B returns the second operand.
func (c *Calculation) B() float64 {
	return c.b
}

// Execute runs the calculation and returns its result. The Divide variant
// performs its own zero-divisor check before delegating to the operation
// library; the other variants delegate directly and propagate library
// failures unchanged.
func (c *Calculation) Execute() (float64, error) {
	if c.variant == VariantDivide && c.b == 0 {
		return 0, calcerr.New(DivisionByZeroMessage).
			WithCode(calcerr.CodeDivisionByZero).
			WithDetail("dividend", c.a)
	}

	fn, ok := variantFuncs[c.variant]
	if !ok {
		return 0, calcerr.Newf("no operation bound for variant %d", int(c.variant)).
			WithCode(calcerr.CodeInternal)
	}

	return fn(c.a, c.b)
}

// Describe returns the formatted form of the calculation:
//
//	<VariantName>: <a> <OperationWord> <b> = <result>
//
// It executes the calculation internally; if execution fails, Describe fails
// with the same condition rather than producing a partial string.
func (c *Calculation) Describe() (string, error) {
	result, err := c.Execute()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s: %s %s %s = %s",
		c.variant.Name(),
		formatOperand(c.a),
		c.variant.Word(),
		formatOperand(c.b),
		formatOperand(result),
	), nil
}

// String returns a technical representation of the calculation without
// executing it, for logs and debugging.
func (c *Calculation) String() string {
	return fmt.Sprintf("%s(a=%s, b=%s)", c.variant.Name(), formatOperand(c.a), formatOperand(c.b))
}

// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calculation
// Description: Closed set of calculation variants with dispatch tables
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calculation

import (
	"math"
	"strconv"
	"strings"

	"github.com/msto63/gcalc/internal/operation"
)

// Variant identifies one of the four fixed calculation kinds.
type Variant int

const (
	// VariantAdd adds the two operands.
	VariantAdd Variant = iota

	// VariantSubtract subtracts the second operand from the first.
	VariantSubtract

	// VariantMultiply multiplies the two operands.
	VariantMultiply

	// VariantDivide divides the first operand by the second.
	VariantDivide
)

// variantWords maps each variant to its display word. Explicit table, never
// derived from type names at runtime.
var variantWords = map[Variant]string{
	VariantAdd:      "Add",
	VariantSubtract: "Subtract",
	VariantMultiply: "Multiply",
	VariantDivide:   "Divide",
}

// variantFuncs maps each variant to its operation library function.
var variantFuncs = map[Variant]func(a, b float64) (float64, error){
	VariantAdd:      operation.Add,
	VariantSubtract: operation.Subtract,
	VariantMultiply: operation.Multiply,
	VariantDivide:   operation.Divide,
}

// Word returns the display word of the variant ("Add", "Subtract", ...).
func (v Variant) Word() string {
	if w, ok := variantWords[v]; ok {
		return w
	}
	return "Unknown"
}

// Name returns the full variant name used in descriptions
// ("AddCalculation", "SubtractCalculation", ...).
func (v Variant) Name() string {
	return v.Word() + "Calculation"
}

// IsValid reports whether the variant is one of the four known kinds.
func (v Variant) IsValid() bool {
	_, ok := variantWords[v]
	return ok
}

// formatOperand renders a float the way descriptions expect: integral values
// keep one trailing decimal ("10.0", "15.0"), everything else uses the
// shortest exact representation.
func formatOperand(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

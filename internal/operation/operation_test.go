// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     operation
// Description: Tests for the arithmetic primitives
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package operation

import (
	"math"
	"testing"

	"github.com/msto63/gcalc/internal/core/calcerr"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive operands", 5.0, 3.0, 8.0},
		{"negative operands", -5.0, -3.0, -8.0},
		{"mixed signs", 10.0, -4.0, 6.0},
		{"zero", 0.0, 0.0, 0.0},
		{"fractions", 1.5, 2.25, 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Add(%v, %v) error = %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive operands", 10.0, 4.0, 6.0},
		{"result negative", 3.0, 8.0, -5.0},
		{"zero subtrahend", 7.5, 0.0, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subtract(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Subtract(%v, %v) error = %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Subtract(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive operands", 2.0, 3.0, 6.0},
		{"both negative", -10.0, -5.0, 50.0},
		{"by zero", 123.0, 0.0, 0.0},
		{"fractions", 0.5, 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Multiply(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Multiply(%v, %v) error = %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Multiply(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"even division", 10.0, 2.0, 5.0},
		{"fractional result", 7.0, 2.0, 3.5},
		{"negative divisor", 9.0, -3.0, -3.0},
		{"zero dividend", 0.0, 4.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Divide(%v, %v) error = %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Divide(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide(10.0, 0.0)
	if err == nil {
		t.Fatal("Divide(10, 0) should fail")
	}

	if !calcerr.HasCode(err, calcerr.CodeDivisionByZero) {
		t.Errorf("error code = %v, want %v", calcerr.GetCode(err), calcerr.CodeDivisionByZero)
	}

	if err.Error() != DivisionByZeroMessage {
		t.Errorf("error message = %q, want %q", err.Error(), DivisionByZeroMessage)
	}
}

func TestNonNumericOperandsRejected(t *testing.T) {
	nan := math.NaN()

	type fn func(a, b float64) (float64, error)
	ops := map[string]fn{
		"Add":      Add,
		"Subtract": Subtract,
		"Multiply": Multiply,
		"Divide":   Divide,
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, pair := range [][2]float64{{nan, 1.0}, {1.0, nan}, {nan, nan}} {
				_, err := op(pair[0], pair[1])
				if err == nil {
					t.Fatalf("%s(%v, %v) should fail", name, pair[0], pair[1])
				}
				if !calcerr.HasCode(err, calcerr.CodeTypeMismatch) {
					t.Errorf("%s error code = %v, want %v", name, calcerr.GetCode(err), calcerr.CodeTypeMismatch)
				}
			}
		})
	}
}

func TestInfinityIsNumeric(t *testing.T) {
	// Infinities are numeric values and pass through arithmetic untouched.
	got, err := Add(math.Inf(1), 1.0)
	if err != nil {
		t.Fatalf("Add(+Inf, 1) error = %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Add(+Inf, 1) = %v, want +Inf", got)
	}
}

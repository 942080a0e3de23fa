// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calcerr
// Description: Structured error handling for gCalc
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

// Package calcerr provides structured errors with classification codes for
// the calculator core. Every failure the core raises carries a Code so that
// callers can decide how to react without parsing message text, while the
// message wording itself stays stable for user-facing presentation.
//
// Usage:
//
//	err := calcerr.New("Cannot divide by zero.").WithCode(calcerr.CodeDivisionByZero)
//	if calcerr.HasCode(err, calcerr.CodeDivisionByZero) {
//	    // recoverable, prompt for a new divisor
//	}
package calcerr

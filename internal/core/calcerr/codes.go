// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calcerr
// Description: Error code definitions for the calculator core
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calcerr

// Code classifies an error for programmatic handling.
type Code string

// Error codes raised by the calculator core.
const (
	// CodeUnknown is the default for errors without an explicit code.
	CodeUnknown Code = "UNKNOWN"

	// CodeInternal marks unexpected conditions inside the core.
	CodeInternal Code = "INTERNAL"

	// CodeInvalidInput marks malformed arguments at API boundaries.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeUnsupportedOperation is raised when an operation name is not
	// present in the registry. Recoverable; the error lists the valid
	// alternatives.
	CodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"

	// CodeDivisionByZero is raised for a zero divisor. Both the operation
	// library and the calculation layer raise this code, each with its own
	// message wording.
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// CodeTypeMismatch is raised when a non-numeric operand reaches the
	// operation library. Treated as a programming error: the core does not
	// validate operands, it only refuses to coerce them.
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeDuplicateRegistration is raised when an operation name is
	// registered twice. A startup error, never expected at runtime.
	CodeDuplicateRegistration Code = "DUPLICATE_REGISTRATION"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeUnsupportedOperation,
		CodeDivisionByZero, CodeTypeMismatch, CodeDuplicateRegistration:
		return true
	default:
		return false
	}
}

// Recoverable reports whether an error with this code is expected during
// normal interactive use and can be presented to the user without ending
// the session.
func (c Code) Recoverable() bool {
	switch c {
	case CodeUnsupportedOperation, CodeDivisionByZero:
		return true
	default:
		return false
	}
}

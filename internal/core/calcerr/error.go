// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calcerr
// Description: Core error type with codes, details and cause chaining
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calcerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Error is a structured error with a classification code, optional details
// and an optional cause. It implements the standard error interface and
// supports errors.Is / errors.As via Unwrap.
type Error struct {
	message   string
	cause     error
	code      Code
	timestamp time.Time
	details   map[string]interface{}
}

// New creates a new Error with the given message.
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. The wrapped error
// keeps the code of the original if it is a *Error; wrapping nil returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}

	var ce *Error
	if errors.As(err, &ce) {
		wrapped.code = ce.code
		for k, v := range ce.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Message returns the message of this error without the cause chain. The
// interactive shell presents this to the user verbatim, so wording must
// stay stable.
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a key-value detail to the error.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code.
func (e *Error) Code() Code {
	return e.code
}

// Timestamp returns when the error was created.
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Detail returns a single detail value and whether it was set.
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the error details.
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed representation for logs and debugging.
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// HasCode checks if an error carries a specific code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.code == code
	}
	return false
}

// GetCode returns the code of an error, or CodeUnknown for foreign errors.
func GetCode(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.code
	}
	return CodeUnknown
}

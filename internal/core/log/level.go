// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     log
// Description: Log level definitions and parsing
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package log

import "strings"

// Level represents the importance level of a log message.
type Level int

const (
	// LevelTrace is the most verbose level, development only.
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging.
	LevelDebug

	// LevelInfo represents general informational messages.
	LevelInfo

	// LevelWarn indicates potentially harmful situations.
	LevelWarn

	// LevelError represents error conditions that need attention.
	LevelError

	// LevelFatal represents critical errors that end the program.
	LevelFatal
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns a fixed-width representation for text output.
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// ShouldLog returns true if this level should be logged given the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value.
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level.
func DefaultLevel() Level {
	return LevelInfo
}

// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     log
// Description: Structured leveled logging for gCalc
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

// Package log provides a small structured logger with levels, named loggers
// and key-value fields. The interactive shell routes it to a file (or
// discards it) so log lines never bleed into the terminal UI.
package log

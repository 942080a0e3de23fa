// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     calculator
// Description: Input line parsing for the interactive shell
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calculator

import (
	"strconv"
	"strings"

	"github.com/msto63/gcalc/internal/core/calcerr"
)

// InvalidInputMessage is shown for lines that do not match the
// <operation> <num1> <num2> shape.
const InvalidInputMessage = "Invalid input. Please follow the format: <operation> <num1> <num2>"

// command is one of the special shell commands.
type command int

const (
	commandNone command = iota
	commandHelp
	commandHistory
	commandClear
	commandExit
)

// parseCommand recognizes the literal special commands, case-insensitively.
func parseCommand(raw string) command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "help":
		return commandHelp
	case "history":
		return commandHistory
	case "clear":
		return commandClear
	case "exit", "quit":
		return commandExit
	default:
		return commandNone
	}
}

// parseLine splits a calculation line into an operation name and two
// operands. Operand validation happens here, in the shell, because the
// calculation core treats numeric-ness as the caller's responsibility.
func parseLine(raw string) (op string, a, b float64, err error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return "", 0, 0, calcerr.New(InvalidInputMessage).
			WithCode(calcerr.CodeInvalidInput)
	}

	op = fields[0]

	a, errA := strconv.ParseFloat(fields[1], 64)
	b, errB := strconv.ParseFloat(fields[2], 64)
	if errA != nil || errB != nil {
		return "", 0, 0, calcerr.New(InvalidInputMessage).
			WithCode(calcerr.CodeInvalidInput).
			WithDetail("num1", fields[1]).
			WithDetail("num2", fields[2])
	}

	return op, a, b, nil
}

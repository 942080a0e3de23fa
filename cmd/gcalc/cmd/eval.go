// ============================================================================
// gCalc - Interactive Terminal Calculator
// ============================================================================
//
// Package:     cmd
// Description: CLI command for one-shot calculation evaluation
// Author:      Mike Stoffels
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/gcalc/internal/calculation"
)

var evalOutput string

// evalResult is the serializable outcome of a one-shot evaluation.
type evalResult struct {
	Operation   string  `json:"operation" yaml:"operation"`
	Num1        float64 `json:"num1" yaml:"num1"`
	Num2        float64 `json:"num2" yaml:"num2"`
	Result      float64 `json:"result" yaml:"result"`
	Description string  `json:"description" yaml:"description"`
}

var evalCmd = &cobra.Command{
	Use:   "eval <operation> <num1> <num2>",
	Short: "Evaluate a single calculation and exit",
	Long: `Evaluates a single calculation without starting the shell.

Examples:
  gcalc eval add 10 5
  gcalc eval divide 20 4 --output json
  gcalc eval multiply 7 8 --output yaml`,
	Args: cobra.ExactArgs(3),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalOutput, "output", "o", "text", "output format: text, json or yaml")
}

func runEval(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid first operand %q: %w", args[1], err)
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid second operand %q: %w", args[2], err)
	}

	calc, err := calculation.Default().Create(args[0], a, b)
	if err != nil {
		return err
	}

	result, err := calc.Execute()
	if err != nil {
		return err
	}
	desc, err := calc.Describe()
	if err != nil {
		return err
	}

	out := evalResult{
		Operation:   args[0],
		Num1:        a,
		Num2:        b,
		Result:      result,
		Description: desc,
	}

	switch evalOutput {
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), desc)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format: %s", evalOutput)
	}

	return nil
}

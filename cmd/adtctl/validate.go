package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/pkg/ast"
)

var (
	validateLimits string
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateLimits, "limits", "strict", "Limits preset: default, relaxed, strict")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a dump against resource limits",
		Long: `The validate command parses a dump under a limits preset and reports
the first violation: nesting depth, input size, string length, group
length or node count. Syntax, undefined constructor and arity errors are
reported as well. The exit status is non-zero when the dump is invalid.

Example:
  adtctl validate prog.adt
  adtctl validate prog.adt --limits default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

// ValidateResult is the result of the validate command.
type ValidateResult struct {
	File   string `json:"file"`
	Limits string `json:"limits"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
}

func runValidate(args []string) error {
	limits, err := ast.LimitsByName(validateLimits)
	if err != nil {
		return err
	}
	opts, err := parseOptions()
	if err != nil {
		return err
	}
	opts.Limits = limits

	res := ValidateResult{File: args[0], Limits: validateLimits, Valid: true}
	_, _, perr := loadInput(args[0], opts)
	if perr != nil {
		res.Valid = false
		res.Error = perr.Error()
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else if res.Valid {
		printInfo("OK: %s is within %s limits\n", res.File, res.Limits)
	}
	if perr != nil {
		return fmt.Errorf("invalid: %w", perr)
	}
	return nil
}

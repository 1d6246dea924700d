package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/pkg/printer"
)

var (
	renderCompact       bool
	renderTrailingComma bool
)

func init() {
	cmd := newRenderCmd()
	cmd.Flags().BoolVar(&renderCompact, "compact", false, "Omit the space after commas")
	cmd.Flags().BoolVar(&renderTrailingComma, "trailing-comma", false, "Write a comma after the last tuple element")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the canonical text of a dump",
		Long: `The render command parses a dump and writes it back in canonical form:
hexadecimal integers, escaped strings and single-space separators. The
output parses to the same tree, which makes render useful for normalizing
dumps before diffing them.

Example:
  adtctl render prog.adt > canonical.adt
  adtctl render prog.adt.gz --compact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args)
		},
	}
	return cmd
}

func runRender(args []string) error {
	v, _, err := parseInput(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatADT
	opts.Compact = renderCompact || cfg.Output.Compact
	opts.TrailingComma = renderTrailingComma || cfg.Output.TrailingComma
	return printer.New(os.Stdout, opts).Print(v)
}

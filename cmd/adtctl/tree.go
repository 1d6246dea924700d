package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/pkg/printer"
)

var (
	treeDepth    int
	treeFormat   string
	treeIndent   int
	treeNoFields bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = config or unlimited)")
	cmd.Flags().StringVar(&treeFormat, "format", "", "Output format: text, json, yaml, adt")
	cmd.Flags().IntVar(&treeIndent, "indent", 0, "Spaces per level")
	cmd.Flags().BoolVar(&treeNoFields, "no-fields", false, "Label arguments by position instead of field name")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Display the tree structure",
		Long: `The tree command prints the parsed tree one value per line, labeling
node arguments with their field names. JSON and YAML renderings are
available for other tools.

Example:
  adtctl tree prog.adt --depth 4
  adtctl tree prog.adt --format yaml --depth 3
  adtctl tree prog.adt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

// treeOptions merges the tree flags over the [output] configuration.
func treeOptions() (printer.Options, error) {
	opts := printer.DefaultOptions()
	opts.IndentSize = cfg.Output.Indent
	opts.MaxDepth = cfg.Output.MaxDepth
	opts.MaxStringBytes = cfg.Output.MaxStringBytes
	opts.Compact = cfg.Output.Compact
	opts.TrailingComma = cfg.Output.TrailingComma

	name := cfg.Output.Format
	if treeFormat != "" {
		name = treeFormat
	}
	if jsonOut {
		name = string(printer.FormatJSON)
	}
	format, err := printer.ParseFormat(name)
	if err != nil {
		return opts, err
	}
	opts.Format = format

	if treeDepth > 0 {
		opts.MaxDepth = treeDepth
	}
	if treeIndent > 0 {
		opts.IndentSize = treeIndent
	}
	opts.ShowFields = !treeNoFields
	return opts, nil
}

func runTree(args []string) error {
	opts, err := treeOptions()
	if err != nil {
		return err
	}
	v, _, err := parseInput(args[0])
	if err != nil {
		return err
	}
	return printer.New(os.Stdout, opts).Print(v)
}

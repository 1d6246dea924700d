package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/pkg/ast"
)

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a dump and print a summary",
		Long: `The parse command parses a dump and reports the shape of the result:
the root value, the number of values and nodes, the nesting depth and the
time the parse took. Use "-" to read standard input.

Example:
  adtctl parse prog.adt
  adtctl parse prog.adt.zst --progress
  adtctl parse --permissive --json other.adt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
	return cmd
}

// ParseSummary is the result of the parse command.
type ParseSummary struct {
	File    string `json:"file"`
	Root    string `json:"root"`
	Values  int    `json:"values"`
	Nodes   int    `json:"nodes"`
	Depth   int    `json:"depth"`
	Elapsed string `json:"elapsed"`
}

func runParse(args []string) error {
	v, elapsed, err := parseInput(args[0])
	if err != nil {
		return err
	}

	summary := ParseSummary{
		File:    args[0],
		Root:    describeRoot(v),
		Values:  ast.Count(v),
		Depth:   ast.Depth(v),
		Elapsed: elapsed.Round(time.Microsecond).String(),
	}
	_ = ast.Walk(v, func(x ast.Value, _ int) error {
		if x.Kind() == ast.KindNode {
			summary.Nodes++
		}
		return nil
	})

	if jsonOut {
		return printJSON(summary)
	}
	printInfo("File:    %s\n", summary.File)
	printInfo("Root:    %s\n", summary.Root)
	printInfo("Values:  %d\n", summary.Values)
	printInfo("Nodes:   %d\n", summary.Nodes)
	printInfo("Depth:   %d\n", summary.Depth)
	printInfo("Elapsed: %s\n", summary.Elapsed)
	return nil
}

// describeRoot names the kind of the root value, with the tag for nodes.
func describeRoot(v ast.Value) string {
	if n, ok := v.(*ast.Node); ok {
		return fmt.Sprintf("%s %s", n.Kind(), n.Tag())
	}
	return v.Kind().String()
}

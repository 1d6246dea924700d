package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/visitor"
)

var (
	statsTop int
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsTop, "top", 20, "Show the N most frequent tags (0 = all)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show node statistics",
		Long: `The stats command counts the nodes of a dump by tag and by class. With
the IR schema, classes group related tags: every expression counts under
Exp, every jump under Jmp and Term.

Example:
  adtctl stats prog.adt
  adtctl stats prog.adt --top 5
  adtctl stats prog.adt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// DumpStats is the result of the stats command.
type DumpStats struct {
	File    string             `json:"file"`
	Nodes   uint64             `json:"nodes"`
	Depth   int                `json:"depth"`
	Tags    []visitor.TagCount `json:"tags"`
	Classes map[string]uint64  `json:"classes"`
}

func runStats(args []string) error {
	v, elapsed, err := parseInput(args[0])
	if err != nil {
		return err
	}
	printVerbose("Parsed in %s\n", elapsed)

	_, h := cfg.Registry()
	ts := visitor.NewTagCounter(h).Count(v)

	stats := DumpStats{
		File:    args[0],
		Nodes:   ts.Nodes,
		Depth:   ast.Depth(v),
		Tags:    ts.Top(statsTop),
		Classes: classCounts(ts),
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("File:  %s\n", stats.File)
	printInfo("Nodes: %d\n", stats.Nodes)
	printInfo("Depth: %d\n", stats.Depth)
	printInfo("\nTags:\n")
	for _, tc := range stats.Tags {
		printInfo("  %-16s %10d  %5.1f%%\n", tc.Tag, tc.Count, percent(tc.Count, stats.Nodes))
	}
	if len(stats.Classes) > 0 {
		printInfo("\nClasses:\n")
		names := make([]string, 0, len(stats.Classes))
		for name := range stats.Classes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			printInfo("  %-16s %10d\n", name, stats.Classes[name])
		}
	}
	return nil
}

// classCounts keeps the class counts that say more than the tag counts:
// classes other than the root and other than a tag counting itself.
func classCounts(ts *visitor.TagStats) map[string]uint64 {
	out := make(map[string]uint64)
	for class, n := range ts.ByClass {
		if class == ast.RootTag {
			continue
		}
		if own, ok := ts.ByTag[class]; ok && own == n {
			continue
		}
		out[class] = n
	}
	return out
}

func percent(n, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

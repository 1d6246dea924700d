package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/internal/config"
	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/bir"
	"github.com/joshuapare/adtkit/pkg/printer"
	"github.com/joshuapare/adtkit/pkg/types"
)

var (
	findPrint bool
)

func init() {
	cmd := newFindCmd()
	cmd.Flags().BoolVar(&findPrint, "print", false, "Print the whole subroutine (honors tree output settings)")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <file> <key>",
		Short: "Look up a subroutine",
		Long: `The find command looks a subroutine up in a project dump. The key is
an identifier when it starts with '@' or '%', an address when it is a
0x-prefixed hexadecimal number, and a name otherwise.

Example:
  adtctl find prog.adt main
  adtctl find prog.adt @main
  adtctl find prog.adt 0x400526 --print --depth 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

// SubSummary is the result of the find command.
type SubSummary struct {
	Name    string `json:"name"`
	Ident   string `json:"ident"`
	Tid     string `json:"tid"`
	Address string `json:"address,omitempty"`
	Args    int    `json:"args"`
	Blks    int    `json:"blks"`
}

func runFind(args []string) error {
	if cfg.Parser.Schema != config.SchemaBIR {
		return fmt.Errorf("find needs the %q schema, not %q", config.SchemaBIR, cfg.Parser.Schema)
	}
	path, key := args[0], args[1]

	v, _, err := parseInput(path)
	if err != nil {
		return err
	}
	proj, ok := bir.AsProject(v)
	if !ok {
		return fmt.Errorf("%s: root is not a %s", path, bir.TagProject)
	}

	sub, ok := proj.Program().FindSub(key)
	if !ok {
		return types.Errorf(types.ErrKindNotFound, "no subroutine matches %s", ast.ParseKey(key))
	}

	if findPrint {
		opts, err := treeOptions()
		if err != nil {
			return err
		}
		return printer.New(os.Stdout, opts).Print(sub.Node)
	}

	summary := SubSummary{
		Name:  sub.Name(),
		Ident: sub.Tid().Name(),
		Tid:   sub.Tid().Number().String(),
		Args:  sub.ArgTerms().Len(),
		Blks:  sub.Blks().Len(),
	}
	summary.Address, _ = sub.Attr(ast.AttrAddress)

	if jsonOut {
		return printJSON(summary)
	}
	printInfo("Name:    %s\n", summary.Name)
	printInfo("Ident:   %s (tid %s)\n", summary.Ident, summary.Tid)
	if summary.Address != "" {
		printInfo("Address: %s\n", summary.Address)
	}
	printInfo("Args:    %d\n", summary.Args)
	printInfo("Blocks:  %d\n", summary.Blks)
	return nil
}

package printer

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/adtkit/pkg/ast"
)

// printText writes one line per value, children indented below their
// parent. The walk is iterative so arbitrarily deep trees print safely.
func (p *Printer) printText(v ast.Value) error {
	type item struct {
		v     ast.Value
		label string
		depth int
	}
	bw := bufio.NewWriter(p.writer)
	stack := []item{{v: v}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		bw.WriteString(strings.Repeat(" ", it.depth*p.opts.IndentSize))
		if it.label != "" {
			bw.WriteString(it.label)
			bw.WriteString(": ")
		}
		bw.WriteString(p.describe(it.v))

		children := ast.Elements(it.v)
		if len(children) > 0 && !p.expand(it.depth) {
			fmt.Fprintf(bw, " (+%d)", len(children))
			children = nil
		}
		bw.WriteByte('\n')

		var names []string
		if n, ok := it.v.(*ast.Node); ok {
			names = p.fieldNames(n)
		}
		for i := len(children) - 1; i >= 0; i-- {
			label := "[" + strconv.Itoa(i) + "]"
			if i < len(names) {
				label = names[i]
			}
			stack = append(stack, item{v: children[i], label: label, depth: it.depth + 1})
		}
	}
	return bw.Flush()
}

// describe returns the one-line summary of a value.
func (p *Printer) describe(v ast.Value) string {
	switch x := v.(type) {
	case ast.Int:
		if u, ok := x.Uint64(); ok && u >= 10 {
			return fmt.Sprintf("%s (%d)", x, u)
		}
		return x.String()
	case ast.Str:
		s := string(x)
		if limit := p.opts.MaxStringBytes; limit > 0 && len(s) > limit {
			return ast.Quote(s[:limit]) + fmt.Sprintf(" (truncated, %d total bytes)", len(s))
		}
		return ast.Quote(s)
	case ast.Tuple:
		return fmt.Sprintf("tuple (%d)", len(x))
	case ast.List:
		return fmt.Sprintf("list [%d]", len(x))
	case *ast.Node:
		return x.Tag()
	}
	return "<nil>"
}

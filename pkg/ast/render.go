package ast

import (
	"bufio"
	"io"
	"strings"
)

// RenderOptions controls the canonical text form.
type RenderOptions struct {
	// Compact omits the space after each comma.
	Compact bool

	// TrailingComma writes a comma after the last element of every non-empty
	// tuple, so one-element tuples read "(x,)".
	TrailingComma bool
}

// Render returns the canonical text of v. Parsing the result yields a value
// Equal to v.
func Render(v Value, opts RenderOptions) string {
	var sb strings.Builder
	_ = RenderTo(&sb, v, opts)
	return sb.String()
}

// RenderTo writes the canonical text of v to w. Rendering is iterative.
func RenderTo(w io.Writer, v Value, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	sep := ", "
	if opts.Compact {
		sep = ","
	}

	// Each entry is either a value still to render or literal text.
	type item struct {
		v   Value
		lit string
	}
	stack := []item{{v: v}}
	pushGroup := func(closer string, elems []Value) {
		stack = append(stack, item{lit: closer})
		for i := len(elems) - 1; i >= 0; i-- {
			stack = append(stack, item{v: elems[i]})
			if i > 0 {
				stack = append(stack, item{lit: sep})
			}
		}
	}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.v == nil {
			bw.WriteString(it.lit)
			continue
		}
		switch x := it.v.(type) {
		case Int:
			bw.WriteString("0x")
			bw.WriteString(x.Text(16))
		case Str:
			writeQuoted(bw, string(x))
		case Tuple:
			bw.WriteByte('(')
			closer := ")"
			if opts.TrailingComma && len(x) > 0 {
				closer = ",)"
			}
			pushGroup(closer, x)
		case List:
			bw.WriteByte('[')
			pushGroup("]", x)
		case *Node:
			bw.WriteString(x.tag)
			bw.WriteByte('(')
			pushGroup(")", x.args)
		}
	}
	return bw.Flush()
}

const hexDigits = "0123456789abcdef"

func writeQuoted(bw *bufio.Writer, s string) {
	bw.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			bw.WriteString(`\\`)
		case c == '"':
			bw.WriteString(`\"`)
		case c == '\n':
			bw.WriteString(`\n`)
		case c == '\t':
			bw.WriteString(`\t`)
		case c == '\r':
			bw.WriteString(`\r`)
		case c >= 0x20 && c < 0x7f:
			bw.WriteByte(c)
		default:
			bw.WriteString(`\x`)
			bw.WriteByte(hexDigits[c>>4])
			bw.WriteByte(hexDigits[c&0xf])
		}
	}
	bw.WriteByte('"')
}

// Quote returns s as a quoted string literal in canonical form.
func Quote(s string) string {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	writeQuoted(bw, s)
	bw.Flush()
	return sb.String()
}

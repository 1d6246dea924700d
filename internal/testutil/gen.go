package testutil

import (
	"fmt"
	"strings"
)

// DeepTuple returns n nested one-element tuples around a zero:
// "((((0,))))" for n = 4.
func DeepTuple(n int) string {
	var sb strings.Builder
	sb.Grow(2*n + 2)
	sb.WriteString(strings.Repeat("(", n))
	sb.WriteString("0,")
	sb.WriteString(strings.Repeat(")", n))
	return sb.String()
}

// DeepApp returns n nested applications of tag around a zero literal,
// e.g. "F(F(F(0x0)))" for n = 3.
func DeepApp(tag string, n int) string {
	var sb strings.Builder
	for range n {
		sb.WriteString(tag)
		sb.WriteByte('(')
	}
	sb.WriteString("0x0")
	sb.WriteString(strings.Repeat(")", n))
	return sb.String()
}

// WideList returns a list of n mixed scalars.
func WideList(n int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range n {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "0x%x", i)
		} else {
			fmt.Fprintf(&sb, "%q", fmt.Sprintf("s%d", i))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Program returns a synthetic project dump with subs subroutines of blks
// blocks each. Every block holds one definition and one jump, so the text
// exercises the same shapes a real dump does.
func Program(subs, blks int) string {
	var sb strings.Builder
	tid := 0
	next := func() int { tid++; return tid }

	sb.WriteString(`Project(Attrs([Attr("filename","synthetic"), Attr("arch","x86_64")]), `)
	sb.WriteString(`Sections([Section(".text", 400000, "\x90\x90\xc3")]), `)
	sb.WriteString(`Memmap([Annotation(Region(400000,400002), Attr("section","\".text\""))]), `)
	id := next()
	fmt.Fprintf(&sb, `Program(Tid(0x%x, "%%%08x"), Attrs([]), Subs([`, id, id)
	for s := range subs {
		if s > 0 {
			sb.WriteString(", ")
		}
		addr := 0x400000 + s*0x100
		fmt.Fprintf(&sb, `Sub(Tid(0x%x, "@sub_%x"), Attrs([Attr("address","0x%x:64u")]), "sub_%x", Args([]), Blks([`, next(), addr, addr, addr)
		for b := range blks {
			if b > 0 {
				sb.WriteString(", ")
			}
			blk := next()
			fmt.Fprintf(&sb, `Blk(Tid(0x%x, "%%%08x"), Attrs([]), Phis([]), `, blk, blk)
			def := next()
			fmt.Fprintf(&sb, `Defs([Def(Tid(0x%x, "%%%08x"), Attrs([]), Var("R%d",Imm(0x40)), PLUS(Var("RSP",Imm(0x40)),Int(0x%x,0x40)))]), `, def, def, b%16, b)
			jmp := next()
			fmt.Fprintf(&sb, `Jmps([Goto(Tid(0x%x, "%%%08x"), Attrs([]), Int(0x1,0x1), Direct(Tid(0x%x, "%%%08x")))]))`, jmp, jmp, jmp+1, jmp+1)
		}
		sb.WriteString("]))")
	}
	sb.WriteString("])))")
	return sb.String()
}

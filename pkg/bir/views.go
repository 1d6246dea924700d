package bir

import (
	"math/big"

	"github.com/joshuapare/adtkit/pkg/ast"
)

// Project is the root of a dump.
type Project struct{ *ast.Node }

// AsProject returns the project view of v.
func AsProject(v ast.Value) (Project, bool) {
	n, ok := v.(*ast.Node)
	if !ok || n.Tag() != TagProject {
		return Project{}, false
	}
	return Project{n}, true
}

// Attrs returns the project-wide attributes.
func (p Project) Attrs() ast.Map { return mapField(p.Node, "attrs") }

// Sections returns the sections keyed by name.
func (p Project) Sections() ast.Map { return mapField(p.Node, "sections") }

// Section returns the section called name.
func (p Project) Section(name string) (Section, bool) {
	v, ok := p.Sections().Lookup(name)
	if !ok {
		return Section{}, false
	}
	return AsSection(v)
}

// Memmap returns the memory annotations.
func (p Project) Memmap() ast.Seq { return seqField(p.Node, "memmap") }

// Program returns the program term.
func (p Project) Program() Program {
	v, _ := p.Field("program")
	n, _ := v.(*ast.Node)
	return Program{n}
}

// Program is the whole-program term.
type Program struct{ *ast.Node }

// Subs returns the subroutines.
func (p Program) Subs() ast.Seq { return seqField(p.Node, "subs") }

// FindSub looks a subroutine up by ast.ParseKey rules: "@name" or "%id"
// by identifier, "0x..." by address, anything else by name.
func (p Program) FindSub(key string) (Sub, bool) {
	n, ok := p.Subs().Find(ast.ParseKey(key), nil).(*ast.Node)
	if !ok {
		return Sub{}, false
	}
	return Sub{n}, true
}

// Sub is a subroutine term.
type Sub struct{ *ast.Node }

// Tid returns the term identifier.
func (s Sub) Tid() Tid { return TermTid(s.Node) }

// Name returns the subroutine name.
func (s Sub) Name() string { return strField(s.Node, "name") }

// ArgTerms returns the argument terms.
func (s Sub) ArgTerms() ast.Seq { return seqField(s.Node, "args") }

// Blks returns the basic blocks; the first one is the entry.
func (s Sub) Blks() ast.Seq { return seqField(s.Node, "blks") }

// Attr returns a term attribute.
func (s Sub) Attr(name string) (string, bool) { return TermAttr(s.Node, name) }

// Section is a contiguous piece of the process image.
type Section struct{ *ast.Node }

// AsSection returns the section view of v.
func AsSection(v ast.Value) (Section, bool) {
	n, ok := v.(*ast.Node)
	if !ok || n.Tag() != TagSection {
		return Section{}, false
	}
	return Section{n}, true
}

// Name returns the section name.
func (s Section) Name() string { return strField(s.Node, "name") }

// Beg returns the address of the first byte.
func (s Section) Beg() ast.Int {
	i, _ := field(s.Node, "beg").(ast.Int)
	return i
}

// Data returns the section contents.
func (s Section) Data() string { return strField(s.Node, "data") }

// Len returns the number of bytes in the section.
func (s Section) Len() int { return len(s.Data()) }

// End returns Beg plus Len, the address just past the last byte.
func (s Section) End() ast.Int {
	b := s.Beg()
	if u, ok := b.Uint64(); ok && u+uint64(s.Len()) >= u {
		return ast.IntOf(u + uint64(s.Len()))
	}
	return ast.BigIntOf(new(big.Int).Add(b.Big(), big.NewInt(int64(s.Len()))))
}

// At returns the byte at offset i from Beg.
func (s Section) At(i int) (byte, bool) {
	data := s.Data()
	if i < 0 || i >= len(data) {
		return 0, false
	}
	return data[i], true
}

// Contains reports whether addr falls inside the section.
func (s Section) Contains(addr uint64) bool {
	beg, ok := s.Beg().Uint64()
	return ok && addr >= beg && addr-beg < uint64(s.Len())
}

// ByteAt returns the byte stored at addr.
func (s Section) ByteAt(addr uint64) (byte, bool) {
	if !s.Contains(addr) {
		return 0, false
	}
	beg, _ := s.Beg().Uint64()
	return s.At(int(addr - beg))
}

// Tid is a term identifier: a number plus an optional readable name.
type Tid struct{ *ast.Node }

// TermTid returns the identifier of any term.
func TermTid(term *ast.Node) Tid {
	if term == nil {
		return Tid{}
	}
	v, _ := term.Field("id")
	n, _ := v.(*ast.Node)
	return Tid{n}
}

// Number returns the identity of the tid.
func (t Tid) Number() ast.Int {
	if t.Node == nil {
		return ast.Int{}
	}
	i, _ := t.At(0).(ast.Int)
	return i
}

// Name returns the readable name, "" when absent.
func (t Tid) Name() string { return strField(t.Node, "name") }

// TermAttr returns the string attribute name of a term.
func TermAttr(term *ast.Node, name string) (string, bool) {
	v, ok := mapField(term, "attrs").Lookup(name)
	if !ok {
		return "", false
	}
	s, ok := v.(ast.Str)
	return string(s), ok
}

func field(n *ast.Node, name string) ast.Value {
	if n == nil {
		return nil
	}
	v, _ := n.Field(name)
	return v
}

func strField(n *ast.Node, name string) string {
	s, _ := field(n, name).(ast.Str)
	return string(s)
}

func seqField(n *ast.Node, name string) ast.Seq {
	s, _ := ast.AsSeq(field(n, name))
	return s
}

func mapField(n *ast.Node, name string) ast.Map {
	m, _ := ast.AsMap(field(n, name))
	return m
}

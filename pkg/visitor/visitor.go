package visitor

import (
	"github.com/joshuapare/adtkit/pkg/ast"
)

// Hook is called for a node during a traversal. A non-nil result aborts
// the traversal and is returned by Run.
type Hook func(v *Visitor, n *ast.Node) any

// dispatch is the resolved hook list of one tag.
type dispatch struct {
	enters []Hook
	visit  Hook
	leaves []Hook
}

// Visitor dispatches hooks over a tag hierarchy. Registration is not safe
// concurrently with Run, and a Visitor must not run on two goroutines at
// once.
type Visitor struct {
	h      ast.Hierarchy
	enter  map[string]Hook
	visit  map[string]Hook
	leave  map[string]Hook
	tables map[string]*dispatch
}

// New returns a visitor over h with the built-in Visit hooks installed. A
// nil hierarchy means ast.Flat().
func New(h ast.Hierarchy) *Visitor {
	if h == nil {
		h = ast.Flat()
	}
	v := &Visitor{
		h:      h,
		enter:  make(map[string]Hook),
		visit:  make(map[string]Hook),
		leave:  make(map[string]Hook),
		tables: make(map[string]*dispatch),
	}
	v.visit[ast.RootTag] = VisitChildren
	v.visit[ast.SeqTag] = VisitElements
	v.visit[ast.MapTag] = VisitElements
	return v
}

// Enter sets the hook called when entering nodes of tag or its
// descendants. It replaces any previous Enter hook for tag.
func (v *Visitor) Enter(tag string, fn Hook) *Visitor {
	return v.set(v.enter, tag, fn)
}

// Visit sets the hook that handles nodes of tag or its descendants. Only
// the most specific Visit hook of a node runs. A nil fn removes the hook,
// exposing the next one up the chain.
func (v *Visitor) Visit(tag string, fn Hook) *Visitor {
	return v.set(v.visit, tag, fn)
}

// Leave sets the hook called when leaving nodes of tag or its descendants.
func (v *Visitor) Leave(tag string, fn Hook) *Visitor {
	return v.set(v.leave, tag, fn)
}

func (v *Visitor) set(table map[string]Hook, tag string, fn Hook) *Visitor {
	if fn == nil {
		delete(table, tag)
	} else {
		table[tag] = fn
	}
	clear(v.tables)
	return v
}

// Hierarchy returns the hierarchy hooks are dispatched over.
func (v *Visitor) Hierarchy() ast.Hierarchy { return v.h }

// Run traverses val. Nodes go through their hooks, tuples and lists are
// traversed element by element, scalars are ignored. The first non-nil
// hook result is returned.
func (v *Visitor) Run(val ast.Value) any {
	switch x := val.(type) {
	case *ast.Node:
		return v.node(x)
	case ast.Tuple:
		return v.each(x)
	case ast.List:
		return v.each(x)
	}
	return nil
}

func (v *Visitor) each(elems []ast.Value) any {
	for _, e := range elems {
		if r := v.Run(e); r != nil {
			return r
		}
	}
	return nil
}

func (v *Visitor) node(n *ast.Node) any {
	d := v.lookup(n.Tag())
	for _, h := range d.enters {
		if r := h(v, n); r != nil {
			return r
		}
	}
	if d.visit != nil {
		if r := d.visit(v, n); r != nil {
			return r
		}
	}
	for _, h := range d.leaves {
		if r := h(v, n); r != nil {
			return r
		}
	}
	return nil
}

func (v *Visitor) lookup(tag string) *dispatch {
	if d, ok := v.tables[tag]; ok {
		return d
	}
	d := &dispatch{}
	for _, a := range v.h.Ancestors(tag) {
		if h, ok := v.enter[a]; ok {
			d.enters = append(d.enters, h)
		}
		if h, ok := v.visit[a]; ok && d.visit == nil {
			d.visit = h
		}
		if h, ok := v.leave[a]; ok {
			d.leaves = append(d.leaves, h)
		}
	}
	v.tables[tag] = d
	return d
}

// VisitChildren runs v over every argument of n. It is the built-in Visit
// hook of RootTag.
func VisitChildren(v *Visitor, n *ast.Node) any {
	return v.each(n.Args())
}

// VisitElements runs v over the elements of a sequence or map node, and
// falls back to VisitChildren for any other shape.
func VisitElements(v *Visitor, n *ast.Node) any {
	if s, ok := ast.AsSeq(n); ok {
		return v.each(s.Elements())
	}
	return VisitChildren(v, n)
}

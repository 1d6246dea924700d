package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/adtkit/pkg/types"
)

// Constructor builds a value from the arguments of an application. It may
// reject the arguments (wrong arity or shape) with an error.
type Constructor func(args []Value) (Value, error)

// Registry resolves constructor names. The parser consults it once per
// application, when the opening parenthesis is read.
type Registry interface {
	Lookup(tag string) (Constructor, bool)
}

// Hierarchy orders the tags a hook may be registered on. Ancestors returns
// tag itself first, then each ancestor, ending with RootTag.
type Hierarchy interface {
	Ancestors(tag string) []string
}

// Constructors is a Registry backed by a plain map.
type Constructors map[string]Constructor

// Lookup implements Registry.
func (c Constructors) Lookup(tag string) (Constructor, bool) {
	fn, ok := c[tag]
	return fn, ok
}

type permissive struct{}

func (permissive) Lookup(tag string) (Constructor, bool) {
	return func(args []Value) (Value, error) {
		return &Node{tag: tag, args: args}, nil
	}, true
}

// Permissive returns a Registry that accepts every tag and builds a plain
// node. It is meant for inspecting dumps whose schema is unknown.
func Permissive() Registry { return permissive{} }

type flat struct{}

func (flat) Ancestors(tag string) []string {
	if tag == RootTag {
		return []string{RootTag}
	}
	return []string{tag, RootTag}
}

// Flat returns a Hierarchy in which every tag descends directly from RootTag.
func Flat() Hierarchy { return flat{} }

// DefKind classifies a definition.
type DefKind uint8

const (
	DefProduct  DefKind = iota // fixed fields
	DefAbstract                // class only, cannot be constructed
	DefSeq                     // one list argument
	DefMap                     // one list argument of entries
)

// Def describes one tag of a Schema.
type Def struct {
	Tag    string
	Parent string
	Kind   DefKind

	// KeyField, when set on a map definition, names the member field used as
	// the entry key. Otherwise members are (key, value) pairs.
	KeyField string

	fields   []string
	min, max int
	index    map[string]int
	chain    []string
	build    Constructor
}

// Fields returns the field names in argument order.
func (d *Def) Fields() []string { return d.fields }

// Arity returns the accepted argument count range.
func (d *Def) Arity() (min, max int) { return d.min, d.max }

// FieldIndex returns the argument position of a field.
func (d *Def) FieldIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Ancestors returns the tag followed by its ancestors up to RootTag.
func (d *Def) Ancestors() []string { return d.chain }

// Make builds a node of this definition after checking its arguments.
func (d *Def) Make(args ...Value) (*Node, error) {
	switch d.Kind {
	case DefAbstract:
		return nil, types.Errorf(types.ErrKindArity, "%s is abstract and cannot be constructed", d.Tag)
	case DefSeq, DefMap:
		if len(args) != 1 {
			return nil, types.Errorf(types.ErrKindArity, "%s expects 1 argument, got %d", d.Tag, len(args))
		}
		if _, ok := args[0].(List); !ok {
			return nil, types.Errorf(types.ErrKindArity, "%s expects a list, got %s", d.Tag, kindName(args[0]))
		}
	default:
		if len(args) < d.min || len(args) > d.max {
			if d.min == d.max {
				return nil, types.Errorf(types.ErrKindArity, "%s expects %d arguments, got %d", d.Tag, d.min, len(args))
			}
			return nil, types.Errorf(types.ErrKindArity, "%s expects %d to %d arguments, got %d", d.Tag, d.min, d.max, len(args))
		}
	}
	return &Node{tag: d.Tag, args: args, def: d}, nil
}

func kindName(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}

// Schema is a declarative Registry and Hierarchy. Definitions are added
// once, parents before children, and the schema is read-only afterwards;
// it is then safe for concurrent use.
//
// The definition methods panic on programming errors (duplicate tag,
// undefined parent, misplaced optional field), like regexp.MustCompile.
type Schema struct {
	defs map[string]*Def
}

// NewSchema returns a schema holding the built-in RootTag, SeqTag and
// MapTag classes.
func NewSchema() *Schema {
	s := &Schema{defs: make(map[string]*Def)}
	s.defs[RootTag] = &Def{Tag: RootTag, Kind: DefAbstract, chain: []string{RootTag}}
	s.Abstract(SeqTag, RootTag)
	s.Abstract(MapTag, RootTag)
	return s
}

// Abstract adds a class tag that groups other definitions.
func (s *Schema) Abstract(tag, parent string) *Schema {
	s.add(&Def{Tag: tag, Parent: parent, Kind: DefAbstract})
	return s
}

// Define adds a constructible tag with the given fields. A field ending in
// "?" is optional; optional fields must come last.
func (s *Schema) Define(tag, parent string, fields ...string) *Schema {
	d := &Def{Tag: tag, Parent: parent, Kind: DefProduct}
	optional := false
	for _, f := range fields {
		name, opt := strings.CutSuffix(f, OptionalFieldSuffix)
		if optional && !opt {
			panic(fmt.Sprintf("ast: %s: required field %q follows an optional one", tag, name))
		}
		optional = optional || opt
		if !opt {
			d.min++
		}
		d.fields = append(d.fields, name)
	}
	d.max = len(d.fields)
	s.add(d)
	return s
}

// Seq adds a sequence tag: one list argument.
func (s *Schema) Seq(tag string) *Schema {
	s.add(&Def{Tag: tag, Parent: SeqTag, Kind: DefSeq, fields: []string{FieldElements}, min: 1, max: 1})
	return s
}

// Map adds a map tag: one list argument of entries. With an empty keyField
// each entry is a two-argument member (key, value); otherwise the entry key
// is the member's keyField field and the value the member itself.
func (s *Schema) Map(tag, keyField string) *Schema {
	s.add(&Def{Tag: tag, Parent: MapTag, Kind: DefMap, KeyField: keyField, fields: []string{FieldElements}, min: 1, max: 1})
	return s
}

func (s *Schema) add(d *Def) {
	if _, dup := s.defs[d.Tag]; dup {
		panic(fmt.Sprintf("ast: tag %q defined twice", d.Tag))
	}
	parent, ok := s.defs[d.Parent]
	if !ok {
		panic(fmt.Sprintf("ast: tag %q has undefined parent %q", d.Tag, d.Parent))
	}
	d.chain = make([]string, 0, len(parent.chain)+1)
	d.chain = append(d.chain, d.Tag)
	d.chain = append(d.chain, parent.chain...)
	d.index = make(map[string]int, len(d.fields))
	for i, f := range d.fields {
		d.index[f] = i
	}
	d.build = func(args []Value) (Value, error) {
		n, err := d.Make(args...)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	s.defs[d.Tag] = d
}

// Def returns the definition of tag.
func (s *Schema) Def(tag string) (*Def, bool) {
	d, ok := s.defs[tag]
	return d, ok
}

// Lookup implements Registry. Abstract tags are not constructible.
func (s *Schema) Lookup(tag string) (Constructor, bool) {
	d, ok := s.defs[tag]
	if !ok || d.Kind == DefAbstract {
		return nil, false
	}
	return d.build, true
}

// Ancestors implements Hierarchy. Unknown tags descend directly from
// RootTag.
func (s *Schema) Ancestors(tag string) []string {
	if d, ok := s.defs[tag]; ok {
		return d.chain
	}
	return flat{}.Ancestors(tag)
}

// Tags returns every defined tag in sorted order.
func (s *Schema) Tags() []string {
	tags := make([]string, 0, len(s.defs))
	for t := range s.defs {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

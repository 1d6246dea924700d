// Package ast is the node model for parsed ADT text.
//
// A parsed document is a tree of Values. Leaves are Int and Str literals;
// groups are Tuple ("(a, b)") and List ("[a, b]"); constructor applications
// ("Tag(a, b)") are *Node values produced by a Registry.
//
// # Core Types
//
// Node carries a tag and its arguments in source order. Nodes built from a
// Schema also carry their Def, which names argument positions so callers can
// use Field("name") instead of indices. Arg gives the unwrapped view used by
// most consumers: the lone argument of a single-argument node, otherwise
// the tuple of all arguments.
//
// # Registries and Hierarchies
//
// The parser resolves every application name through a Registry. Three
// implementations are provided: Constructors (a plain map), Schema
// (declarative definitions with arity checks) and Permissive (accepts
// anything). A Schema is also a Hierarchy, the class chain the visitor uses
// to dispatch hooks from the most specific tag up to RootTag.
//
// # Views
//
// AsSeq and AsMap interpret sequence and map nodes. Seq.Find selects a term
// by identifier, name, address attribute or tid:
//
//	subs, _ := ast.AsSeq(program.At(2))
//	main := subs.Find(ast.ParseKey("@main"), nil)
//
// # Rendering
//
// Render writes the canonical text of a value. Re-parsing the rendered text
// yields an Equal value. Equal, Render and Walk use explicit stacks and are
// safe on arbitrarily deep trees.
//
// # Validation
//
// Limits bounds depth, group length, string length and application count.
// The parser enforces them while reading; ValidateTree checks a tree that
// was built some other way.
package ast

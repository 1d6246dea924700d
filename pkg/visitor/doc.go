// Package visitor walks parsed trees with hooks dispatched over a tag
// hierarchy.
//
// # Dispatch
//
// A Visitor holds three hook tables keyed by tag: Enter, Visit and Leave.
// Running it on a node resolves the node's ancestor chain (most specific
// tag first, RootTag last) through the Hierarchy and then:
//
//  1. calls every Enter hook found along the chain, most specific first;
//  2. calls only the first Visit hook found along the chain;
//  3. calls every Leave hook found along the chain, most specific first.
//
// Any hook returning a non-nil result stops the traversal immediately and
// that result becomes the result of Run. The resolved hook lists are cached
// per tag, so the chain is consulted once per distinct tag.
//
// Built-in Visit hooks sit at RootTag (visit every argument), SeqTag and
// MapTag (visit every element). Registering a Visit hook on a more specific
// tag overrides them; a custom Visit hook that still wants the default
// descent calls VisitChildren.
//
// # Example
//
//	vars := map[string]int{}
//	v := visitor.New(bir.Schema()).
//		Enter("Var", func(_ *visitor.Visitor, n *ast.Node) any {
//			name, _ := n.Field("name")
//			vars[string(name.(ast.Str))]++
//			return nil
//		})
//	v.Run(program)
//
// Hooks recurse on the goroutine stack, which grows on demand; the parser
// and the node model never do.
package visitor

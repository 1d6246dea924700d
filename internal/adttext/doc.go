// Package adttext reads ADT text, the parenthesized serialization of
// tagged terms:
//
//	Project(Attrs([Attr("arch","x86_64")]), Sections([]), Memmap([]), Program(...))
//
// Parse is a hand-written state machine over an explicit frame stack. Each
// frame is an open tuple, list or application together with the element
// currently being read inside it; closing a group hands its children to
// the constructor (or wraps them as a Tuple/List) and stores the result in
// the enclosing frame. Nothing is evaluated and no recursion is involved,
// so hostile or merely very deep inputs cannot exhaust the goroutine
// stack.
//
// Decode normalizes the input encoding first (BOM handling, UTF-16 and
// single-byte code pages via golang.org/x/text).
package adttext

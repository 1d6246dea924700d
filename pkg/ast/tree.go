package ast

// Node is a constructor application: a tag plus its ordered arguments.
// Nodes built through a Schema carry their definition, which names the
// argument positions; nodes built with Make have none.
type Node struct {
	tag  string
	args []Value
	def  *Def
}

// Make builds a node without arity checks. The args slice is retained, not
// copied.
func Make(tag string, args ...Value) *Node {
	return &Node{tag: tag, args: args}
}

func (*Node) Kind() Kind { return KindNode }
func (*Node) isValue()   {}

// Tag returns the constructor name.
func (n *Node) Tag() string { return n.tag }

// Args returns the arguments in source order. Callers must not modify the
// returned slice.
func (n *Node) Args() []Value { return n.args }

// Len returns the number of arguments.
func (n *Node) Len() int { return len(n.args) }

// At returns argument i, or nil when i is out of range.
func (n *Node) At(i int) Value {
	if i < 0 || i >= len(n.args) {
		return nil
	}
	return n.args[i]
}

// Arg is the unwrapped argument view: the lone argument when the node has
// exactly one, otherwise a Tuple of all arguments.
func (n *Node) Arg() Value {
	if len(n.args) == 1 {
		return n.args[0]
	}
	return Tuple(n.args)
}

// Def returns the schema definition the node was built from, or nil.
func (n *Node) Def() *Def { return n.def }

// Field returns the argument bound to a field name of the node's definition.
// It reports false for nodes without a definition, unknown names, and
// omitted optional fields.
func (n *Node) Field(name string) (Value, bool) {
	if n.def == nil {
		return nil, false
	}
	i, ok := n.def.FieldIndex(name)
	if !ok || i >= len(n.args) {
		return nil, false
	}
	return n.args[i], true
}

// Is reports whether the node's tag is tag or descends from it. Nodes
// without a definition only match their own tag and RootTag.
func (n *Node) Is(tag string) bool {
	if n.tag == tag || tag == RootTag {
		return true
	}
	if n.def == nil {
		return false
	}
	for _, a := range n.def.chain {
		if a == tag {
			return true
		}
	}
	return false
}

// String renders the node in canonical form.
func (n *Node) String() string { return Render(n, RenderOptions{}) }

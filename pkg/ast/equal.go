package ast

// Equal reports whether a and b are structurally equal: same variant, same
// tag, pairwise equal children. Integers compare by value regardless of
// representation. The comparison uses an explicit stack, so arbitrarily
// deep trees are safe.
func Equal(a, b Value) bool {
	type pair struct{ a, b Value }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != nil || p.b != nil {
				return false
			}
			continue
		}
		switch x := p.a.(type) {
		case Int:
			y, ok := p.b.(Int)
			if !ok || x.Cmp(y) != 0 {
				return false
			}
		case Str:
			y, ok := p.b.(Str)
			if !ok || x != y {
				return false
			}
		case Tuple:
			y, ok := p.b.(Tuple)
			if !ok || len(x) != len(y) {
				return false
			}
			for i := range x {
				stack = append(stack, pair{x[i], y[i]})
			}
		case List:
			y, ok := p.b.(List)
			if !ok || len(x) != len(y) {
				return false
			}
			for i := range x {
				stack = append(stack, pair{x[i], y[i]})
			}
		case *Node:
			y, ok := p.b.(*Node)
			if !ok || x.tag != y.tag || len(x.args) != len(y.args) {
				return false
			}
			for i := range x.args {
				stack = append(stack, pair{x.args[i], y.args[i]})
			}
		default:
			return false
		}
	}
	return true
}

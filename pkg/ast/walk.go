package ast

import "errors"

// SkipChildren may be returned by a WalkFunc to skip the children of the
// current value.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each value in pre-order. depth is 0 for the root.
type WalkFunc func(v Value, depth int) error

// Walk visits v and its descendants in pre-order using an explicit stack.
// Any error other than SkipChildren stops the walk and is returned.
func Walk(v Value, fn WalkFunc) error {
	type entry struct {
		v     Value
		depth int
	}
	stack := []entry{{v, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(e.v, e.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		children := Elements(e.v)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, entry{children[i], e.depth + 1})
		}
	}
	return nil
}

// Depth returns the nesting depth of v: 1 for a scalar or an empty group,
// one more than the deepest child otherwise.
func Depth(v Value) int {
	maxDepth := 0
	_ = Walk(v, func(_ Value, depth int) error {
		if depth+1 > maxDepth {
			maxDepth = depth + 1
		}
		return nil
	})
	return maxDepth
}

// Count returns the number of values in v, v included.
func Count(v Value) int {
	n := 0
	_ = Walk(v, func(Value, int) error {
		n++
		return nil
	})
	return n
}

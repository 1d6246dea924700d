package ast

import (
	"errors"
	"fmt"

	"github.com/joshuapare/adtkit/pkg/types"
)

// Limits bounds the resources a document may consume. A zero field means
// no limit.
type Limits struct {
	// MaxDepth is the maximum nesting depth. A scalar has depth 1, and each
	// enclosing group or application adds one.
	MaxDepth int

	// MaxInputSize is the maximum input size in bytes.
	MaxInputSize int64

	// MaxStringLen is the maximum decoded length of one string literal.
	MaxStringLen int

	// MaxListLen is the maximum number of elements of one group.
	MaxListLen int

	// MaxNodes is the maximum number of applications in one document.
	MaxNodes int64
}

// DefaultLimits returns the limits applied when none are configured. Only
// depth is bounded, generously, so a runaway input fails before exhausting
// memory.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth}
}

// RelaxedLimits imposes no limit at all.
func RelaxedLimits() Limits {
	return Limits{}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:     StrictMaxDepth,
		MaxInputSize: StrictMaxInputSize,
		MaxStringLen: StrictMaxStringLen,
		MaxListLen:   StrictMaxListLen,
		MaxNodes:     StrictMaxNodes,
	}
}

// LimitsByName resolves a preset name: "default", "relaxed" or "strict".
func LimitsByName(name string) (Limits, error) {
	switch name {
	case "", "default":
		return DefaultLimits(), nil
	case "relaxed":
		return RelaxedLimits(), nil
	case "strict":
		return StrictLimits(), nil
	}
	return Limits{}, types.Errorf(types.ErrKindUnsupported, "unknown limits preset %q", name)
}

// ValidationError represents a limit violation.
type ValidationError struct {
	Limit   string // name of the exceeded limit
	Current int64
	Maximum int64
	Tag     string // innermost enclosing application, if any
}

func (e *ValidationError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("limit exceeded in %s: %s is %d (max %d)", e.Tag, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("limit exceeded: %s is %d (max %d)", e.Limit, e.Current, e.Maximum)
}

// ValidateTree checks an already built tree against the limits that apply
// to trees (depth, group length, string length, application count). The
// first violation is returned as a ValidationError.
func ValidateTree(v Value, limits Limits) error {
	var nodes int64
	// tags[d] is the innermost application at or above depth d.
	var tags []string
	return Walk(v, func(x Value, depth int) error {
		tags = tags[:depth]
		enclosing := ""
		if depth > 0 {
			enclosing = tags[depth-1]
		}
		if limits.MaxDepth > 0 && depth+1 > limits.MaxDepth {
			return &ValidationError{Limit: "MaxDepth", Current: int64(depth + 1), Maximum: int64(limits.MaxDepth), Tag: enclosing}
		}
		here := enclosing
		switch y := x.(type) {
		case Str:
			if limits.MaxStringLen > 0 && len(y) > limits.MaxStringLen {
				return &ValidationError{Limit: "MaxStringLen", Current: int64(len(y)), Maximum: int64(limits.MaxStringLen), Tag: enclosing}
			}
		case *Node:
			here = y.tag
			nodes++
			if limits.MaxNodes > 0 && nodes > limits.MaxNodes {
				return &ValidationError{Limit: "MaxNodes", Current: nodes, Maximum: limits.MaxNodes, Tag: y.tag}
			}
		}
		if n := len(Elements(x)); limits.MaxListLen > 0 && n > limits.MaxListLen {
			return &ValidationError{Limit: "MaxListLen", Current: int64(n), Maximum: int64(limits.MaxListLen), Tag: here}
		}
		tags = append(tags, here)
		return nil
	})
}

// LimitViolation wraps a ValidationError into a types.Error of kind
// ErrKindLimit. Other errors are returned unchanged.
func LimitViolation(err error) error {
	ve := &ValidationError{}
	if errors.As(err, &ve) {
		return &types.Error{
			Kind:   types.ErrKindLimit,
			Msg:    ve.Error(),
			Offset: types.NoOffset,
			Err:    ve,
		}
	}
	return err
}

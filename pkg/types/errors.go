package types

import (
	"errors"
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInput       ErrKind = iota // syntactic defect in ADT text
	ErrKindUndefined                  // application names a tag absent from the registry
	ErrKindArity                      // constructor rejected its argument list
	ErrKindLimit                      // configured resource limit exceeded
	ErrKindFault                      // parser invariant violated (a bug, not bad input)
	ErrKindNotFound                   // missing member/field/file
	ErrKindUnsupported                // recognized but unsupported feature (encoding, compression)
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInput:
		return "input"
	case ErrKindUndefined:
		return "undefined constructor"
	case ErrKindArity:
		return "arity"
	case ErrKindLimit:
		return "limit"
	case ErrKindFault:
		return "parser fault"
	case ErrKindNotFound:
		return "not found"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "ErrKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// NoOffset marks an Error that is not tied to a position in the input.
const NoOffset = -1

// Error is a typed error with an optional input position and underlying cause.
type Error struct {
	Kind    ErrKind
	Msg     string
	Offset  int    // byte offset of the defect, NoOffset if none
	Excerpt string // short slice of input around Offset
	Err     error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
		if e.Excerpt != "" {
			msg = fmt.Sprintf("%s near %q", msg, e.Excerpt)
		}
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, types.ErrInput) matches any input error regardless of position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels usable with errors.Is.
var (
	// ErrInput indicates malformed ADT text.
	ErrInput = &Error{Kind: ErrKindInput, Msg: "malformed input", Offset: NoOffset}
	// ErrUndefined indicates an application of an unregistered constructor.
	ErrUndefined = &Error{Kind: ErrKindUndefined, Msg: "undefined constructor", Offset: NoOffset}
	// ErrArity indicates a constructor received the wrong number or shape of arguments.
	ErrArity = &Error{Kind: ErrKindArity, Msg: "constructor arity mismatch", Offset: NoOffset}
	// ErrLimit indicates a resource limit was exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "limit exceeded", Offset: NoOffset}
	// ErrFault indicates an internal parser invariant was violated.
	ErrFault = &Error{Kind: ErrKindFault, Msg: "parser fault", Offset: NoOffset}
	// ErrNotFound indicates a missing member, field or file.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found", Offset: NoOffset}
	// ErrUnsupported indicates an unsupported encoding or container format.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported", Offset: NoOffset}
)

// Errorf builds an *Error of the given kind without a position.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Offset: NoOffset}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

package ast

import (
	"math/big"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindStr
	KindTuple
	KindList
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindStr:
		return "string"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindNode:
		return "node"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is any element of a parsed tree. The set of implementations is
// closed: Int, Str, Tuple, List and *Node.
type Value interface {
	Kind() Kind
	isValue()
}

// Int is an unsigned integer literal. Literals that fit in 64 bits are kept
// inline; wider ones carry a big.Int.
type Int struct {
	small uint64
	big   *big.Int
}

// IntOf returns the Int holding u.
func IntOf(u uint64) Int { return Int{small: u} }

// BigIntOf returns the Int holding b. b is copied; values that fit in 64
// bits are normalized to the inline form so Equal and Cmp need not care how
// the literal was produced.
func BigIntOf(b *big.Int) Int {
	if b.IsUint64() {
		return Int{small: b.Uint64()}
	}
	return Int{big: new(big.Int).Set(b)}
}

func (Int) Kind() Kind { return KindInt }
func (Int) isValue()   {}

// Uint64 returns the value and whether it fits in 64 bits.
func (i Int) Uint64() (uint64, bool) {
	if i.big != nil {
		return 0, false
	}
	return i.small, true
}

// IsBig reports whether the value needs more than 64 bits.
func (i Int) IsBig() bool { return i.big != nil }

// Big returns the value as a fresh big.Int.
func (i Int) Big() *big.Int {
	if i.big != nil {
		return new(big.Int).Set(i.big)
	}
	return new(big.Int).SetUint64(i.small)
}

// Cmp compares i and o, returning -1, 0 or +1.
func (i Int) Cmp(o Int) int {
	if i.big == nil && o.big == nil {
		switch {
		case i.small < o.small:
			return -1
		case i.small > o.small:
			return 1
		}
		return 0
	}
	return i.Big().Cmp(o.Big())
}

// Text returns the digits of i in the given base, without prefix.
func (i Int) Text(base int) string {
	if i.big != nil {
		return i.big.Text(base)
	}
	return strconv.FormatUint(i.small, base)
}

// String returns the canonical hexadecimal form, e.g. "0x2a".
func (i Int) String() string { return "0x" + i.Text(16) }

// Str is a byte string literal. Its contents are the decoded bytes, not the
// quoted source text.
type Str string

func (Str) Kind() Kind { return KindStr }
func (Str) isValue()   {}

// Tuple is a fixed-size product written "(a, b)". A one-element tuple stays
// a tuple; it is never collapsed into its element.
type Tuple []Value

func (Tuple) Kind() Kind { return KindTuple }
func (Tuple) isValue()   {}

// List is a sequence written "[a, b]".
type List []Value

func (List) Kind() Kind { return KindList }
func (List) isValue()   {}

// Elements returns the direct children of a Tuple, List or Node and nil for
// scalars.
func Elements(v Value) []Value {
	switch x := v.(type) {
	case Tuple:
		return x
	case List:
		return x
	case *Node:
		if x == nil {
			return nil
		}
		return x.args
	}
	return nil
}

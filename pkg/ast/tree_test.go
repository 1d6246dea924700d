package ast

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_ArgUnwrapsSingleArgument(t *testing.T) {
	one := Make("Var", Str("x"))
	assert.Equal(t, Str("x"), one.Arg())

	two := Make("Pair", IntOf(1), IntOf(2))
	assert.Equal(t, Tuple{IntOf(1), IntOf(2)}, two.Arg())

	none := Make("Unit")
	assert.IsType(t, Tuple{}, none.Arg())
	assert.Empty(t, none.Arg())
}

func TestNode_At(t *testing.T) {
	n := Make("Pair", IntOf(1), Str("b"))
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, IntOf(1), n.At(0))
	assert.Equal(t, Str("b"), n.At(1))
	assert.Nil(t, n.At(2))
	assert.Nil(t, n.At(-1))
}

func TestNode_FieldWithoutDefinition(t *testing.T) {
	n := Make("Tid", IntOf(1), Str("@main"))
	_, ok := n.Field("name")
	assert.False(t, ok)
	assert.Nil(t, n.Def())
}

func TestNode_Is(t *testing.T) {
	s := NewSchema().
		Abstract("Exp", RootTag).
		Abstract("BinOp", "Exp").
		Define("PLUS", "BinOp", "lhs", "rhs")
	ctor, ok := s.Lookup("PLUS")
	require.True(t, ok)
	v, err := ctor([]Value{IntOf(1), IntOf(2)})
	require.NoError(t, err)
	n := v.(*Node)

	assert.True(t, n.Is("PLUS"))
	assert.True(t, n.Is("BinOp"))
	assert.True(t, n.Is("Exp"))
	assert.True(t, n.Is(RootTag))
	assert.False(t, n.Is("UnOp"))
	assert.True(t, Make("Free").Is(RootTag))
	assert.False(t, Make("Free").Is("Exp"))
}

func TestInt_BigNormalization(t *testing.T) {
	small := BigIntOf(big.NewInt(42))
	assert.False(t, small.IsBig())
	u, ok := small.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(42), u)

	huge, ok := new(big.Int).SetString("1ffffffffffffffffffff", 16)
	require.True(t, ok)
	wide := BigIntOf(huge)
	assert.True(t, wide.IsBig())
	_, ok = wide.Uint64()
	assert.False(t, ok)
	assert.Equal(t, "0x1ffffffffffffffffffff", wide.String())
	assert.Equal(t, 1, wide.Cmp(IntOf(^uint64(0))))
	assert.Equal(t, 0, IntOf(42).Cmp(small))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "int", IntOf(0).Kind().String())
	assert.Equal(t, "string", Str("").Kind().String())
	assert.Equal(t, "tuple", Tuple{}.Kind().String())
	assert.Equal(t, "list", List{}.Kind().String())
	assert.Equal(t, "node", Make("X").Kind().String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

package ast

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", IntOf(1), IntOf(1), true},
		{"different ints", IntOf(1), IntOf(2), false},
		{"big vs small", BigIntOf(big.NewInt(5)), IntOf(5), true},
		{"strings", Str("a"), Str("a"), true},
		{"int vs string", IntOf(1), Str("1"), false},
		{"tuple vs list", Tuple{IntOf(1)}, List{IntOf(1)}, false},
		{"empty tuples", Tuple{}, Tuple(nil), true},
		{"nested", Tuple{Tuple{}}, Tuple{Tuple{}}, true},
		{"nested differs", Tuple{Tuple{}}, Tuple{List{}}, false},
		{"length", List{IntOf(1)}, List{IntOf(1), IntOf(1)}, false},
		{"nodes", Make("A", IntOf(1)), Make("A", IntOf(1)), true},
		{"tags", Make("A", IntOf(1)), Make("B", IntOf(1)), false},
		{"node vs tuple", Make("A"), Tuple{}, false},
		{"nil", nil, nil, true},
		{"nil vs value", nil, IntOf(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		opts RenderOptions
		want string
	}{
		{"int", IntOf(42), RenderOptions{}, "0x2a"},
		{"zero", IntOf(0), RenderOptions{}, "0x0"},
		{"string", Str("hi"), RenderOptions{}, `"hi"`},
		{"escapes", Str("a\"b\\c\nd\te\rf"), RenderOptions{}, `"a\"b\\c\nd\te\rf"`},
		{"binary", Str("\x00\xff"), RenderOptions{}, `"\x00\xff"`},
		{"empty tuple", Tuple{}, RenderOptions{}, "()"},
		{"one tuple", Tuple{IntOf(1)}, RenderOptions{}, "(0x1)"},
		{"list", List{IntOf(1), Str("x")}, RenderOptions{}, `[0x1, "x"]`},
		{"node", Make("Tid", IntOf(1), Str("@main")), RenderOptions{}, `Tid(0x1, "@main")`},
		{"compact", Make("P", List{IntOf(1), IntOf(2)}, Tuple{}), RenderOptions{Compact: true}, "P([0x1,0x2],())"},
		{"trailing comma", Tuple{Tuple{IntOf(1)}, Tuple{}}, RenderOptions{TrailingComma: true}, "((0x1,), (),)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.v, tt.opts))
		})
	}
}

func TestRender_Deep(t *testing.T) {
	const depth = 100_000
	var v Value = Tuple{}
	for i := 0; i < depth; i++ {
		v = Tuple{v}
	}
	out := Render(v, RenderOptions{Compact: true})
	assert.Equal(t, strings.Repeat("(", depth+1)+strings.Repeat(")", depth+1), out)
	assert.True(t, Equal(v, v))
	assert.Equal(t, depth+1, Depth(v))
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTo(&buf, Make("X", Str("y")), RenderOptions{}))
	assert.Equal(t, `X("y")`, buf.String())
	assert.Equal(t, `X("y")`, Make("X", Str("y")).String())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"\\\""`, Quote(`\"`))
	assert.Equal(t, `"caf\xc3\xa9"`, Quote("café"))
}

package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/adtkit/pkg/types"
)

func testSchema() *Schema {
	return NewSchema().
		Abstract("Term", RootTag).
		Define("Tid", RootTag, "number", "name").
		Define("Sub", "Term", "id", "attrs", "name", "args?", "blks?").
		Seq("Subs").
		Map("Attrs", "").
		Define("Attr", RootTag, "key", "value")
}

func TestSchema_DefineArity(t *testing.T) {
	s := testSchema()
	d, ok := s.Def("Sub")
	require.True(t, ok)
	lo, hi := d.Arity()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 5, hi)
	assert.Equal(t, []string{"id", "attrs", "name", "args", "blks"}, d.Fields())

	_, err := d.Make(IntOf(1), IntOf(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrArity))
	assert.Contains(t, err.Error(), "Sub expects 3 to 5 arguments, got 2")

	n, err := d.Make(IntOf(1), IntOf(2), Str("main"))
	require.NoError(t, err)
	v, ok := n.Field("name")
	require.True(t, ok)
	assert.Equal(t, Str("main"), v)
	_, ok = n.Field("blks")
	assert.False(t, ok, "omitted optional field")
}

func TestSchema_FixedArityMessage(t *testing.T) {
	d, _ := testSchema().Def("Tid")
	_, err := d.Make(IntOf(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tid expects 2 arguments, got 1")
}

func TestSchema_SeqRequiresList(t *testing.T) {
	s := testSchema()
	ctor, ok := s.Lookup("Subs")
	require.True(t, ok)

	_, err := ctor([]Value{Tuple{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Subs expects a list, got tuple")

	v, err := ctor([]Value{List{}})
	require.NoError(t, err)
	assert.Equal(t, "Subs", v.(*Node).Tag())
}

func TestSchema_AbstractNotConstructible(t *testing.T) {
	s := testSchema()
	_, ok := s.Lookup("Term")
	assert.False(t, ok)
	_, ok = s.Lookup(RootTag)
	assert.False(t, ok)
	_, ok = s.Lookup("Missing")
	assert.False(t, ok)
}

func TestSchema_Ancestors(t *testing.T) {
	s := testSchema()
	assert.Equal(t, []string{"Sub", "Term", RootTag}, s.Ancestors("Sub"))
	assert.Equal(t, []string{"Subs", SeqTag, RootTag}, s.Ancestors("Subs"))
	assert.Equal(t, []string{"Attrs", MapTag, RootTag}, s.Ancestors("Attrs"))
	assert.Equal(t, []string{"Unknown", RootTag}, s.Ancestors("Unknown"))
	assert.Equal(t, []string{RootTag}, s.Ancestors(RootTag))
}

func TestSchema_Panics(t *testing.T) {
	assert.Panics(t, func() { testSchema().Define("Tid", RootTag) })
	assert.Panics(t, func() { NewSchema().Define("X", "Nope") })
	assert.Panics(t, func() { NewSchema().Define("X", RootTag, "a?", "b") })
}

func TestSchema_Tags(t *testing.T) {
	tags := NewSchema().Define("B", RootTag).Define("A", RootTag).Tags()
	assert.Equal(t, []string{"A", RootTag, "B", MapTag, SeqTag}, tags)
}

func TestConstructors_Lookup(t *testing.T) {
	calls := 0
	reg := Constructors{
		"hello": func(args []Value) (Value, error) {
			calls++
			return Make("hello", args...), nil
		},
	}
	ctor, ok := reg.Lookup("hello")
	require.True(t, ok)
	_, err := ctor(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	_, ok = reg.Lookup("bye")
	assert.False(t, ok)
}

func TestPermissive(t *testing.T) {
	ctor, ok := Permissive().Lookup("Anything")
	require.True(t, ok)
	v, err := ctor([]Value{IntOf(7)})
	require.NoError(t, err)
	assert.True(t, Equal(Make("Anything", IntOf(7)), v))
	assert.Equal(t, []string{"Anything", RootTag}, Flat().Ancestors("Anything"))
}

package adt_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/adtkit/pkg/adt"
	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/bir"
	"github.com/joshuapare/adtkit/pkg/types"
)

func ExampleParseString() {
	v, err := adt.ParseString(`Pair(42, "answer", [1,2,],)`, nil, adt.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ast.Render(v, ast.RenderOptions{}))
	// Output: Pair(0x2a, "answer", [0x1, 0x2])
}

func ExampleParseString_legacyHex() {
	v, err := adt.ParseString(`Region(400430,40043e)`, bir.Schema(), adt.Options{
		LegacyHexTags: bir.LegacyHexTags,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ast.Render(v, ast.RenderOptions{}))
	// Output: Region(0x400430, 0x40043e)
}

func ExampleParseString_error() {
	_, err := adt.ParseString(`Tid(0x1, "@main", 3)`, bir.Schema(), adt.Options{})
	var e *types.Error
	if errors.As(err, &e) {
		fmt.Println(e.Kind, e.Offset)
	}
	// Output: arity 0
}

package printer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/joshuapare/adtkit/pkg/ast"
)

// jsonNode represents a constructor application. Nodes with a schema
// definition list their arguments under field names, others by position.
type jsonNode struct {
	Tag    string     `json:"tag"`
	Fields jsonFields `json:"fields,omitempty"`
	Args   []any      `json:"args,omitempty"`
}

// jsonTuple keeps tuples distinguishable from lists, which map to arrays.
type jsonTuple struct {
	Tuple []any `json:"tuple"`
}

// jsonElided stands in for a group below MaxDepth.
type jsonElided struct {
	Elided int `json:"elided"`
}

type jsonField struct {
	Name  string
	Value any
}

// jsonFields marshals as an object whose keys keep argument order.
type jsonFields []jsonField

func (f jsonFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fld := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fld.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(fld.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// printJSON writes v as one indented JSON document. Integers are exact
// decimal numbers regardless of width.
func (p *Printer) printJSON(v ast.Value) error {
	enc := json.NewEncoder(p.writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	return enc.Encode(p.toJSON(v, 0))
}

func (p *Printer) toJSON(v ast.Value, depth int) any {
	children := ast.Elements(v)
	if len(children) > 0 && !p.expand(depth) {
		return jsonElided{Elided: len(children)}
	}

	switch x := v.(type) {
	case ast.Int:
		return json.Number(x.Text(10))
	case ast.Str:
		return string(x)
	case ast.List:
		return p.jsonElems(x, depth)
	case ast.Tuple:
		return jsonTuple{Tuple: p.jsonElems(x, depth)}
	case *ast.Node:
		out := jsonNode{Tag: x.Tag()}
		names := p.fieldNames(x)
		if names == nil {
			out.Args = p.jsonElems(x.Args(), depth)
			return out
		}
		for i, arg := range x.Args() {
			out.Fields = append(out.Fields, jsonField{Name: names[i], Value: p.toJSON(arg, depth+1)})
		}
		return out
	}
	return nil
}

func (p *Printer) jsonElems(elems []ast.Value, depth int) []any {
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = p.toJSON(e, depth+1)
	}
	return out
}

package printer

import (
	"encoding/base64"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/adtkit/pkg/ast"
)

// printYAML writes v as a YAML document with the same shape as the JSON
// output: lists are sequences, tuples and nodes are mappings.
func (p *Printer) printYAML(v ast.Value) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(p.toYAML(v, 0)); err != nil {
		return err
	}
	return enc.Close()
}

func (p *Printer) toYAML(v ast.Value, depth int) *yaml.Node {
	children := ast.Elements(v)
	if len(children) > 0 && !p.expand(depth) {
		return yamlMap("elided", yamlScalar("!!int", strconv.Itoa(len(children))))
	}

	switch x := v.(type) {
	case ast.Int:
		return yamlScalar("!!int", x.String())
	case ast.Str:
		if utf8.ValidString(string(x)) {
			return yamlScalar("!!str", string(x))
		}
		return yamlScalar("!!binary", base64.StdEncoding.EncodeToString([]byte(x)))
	case ast.List:
		return p.yamlSeq(x, depth)
	case ast.Tuple:
		return yamlMap("tuple", p.yamlSeq(x, depth))
	case *ast.Node:
		out := yamlMap("tag", yamlScalar("!!str", x.Tag()))
		if x.Len() == 0 {
			return out
		}
		names := p.fieldNames(x)
		if names == nil {
			out.Content = append(out.Content, yamlScalar("!!str", "args"), p.yamlSeq(x.Args(), depth))
			return out
		}
		fields := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, arg := range x.Args() {
			fields.Content = append(fields.Content, yamlScalar("!!str", names[i]), p.toYAML(arg, depth+1))
		}
		out.Content = append(out.Content, yamlScalar("!!str", "fields"), fields)
		return out
	}
	return yamlScalar("!!null", "null")
}

func (p *Printer) yamlSeq(elems []ast.Value, depth int) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range elems {
		seq.Content = append(seq.Content, p.toYAML(e, depth+1))
	}
	return seq
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlMap(key string, value *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{yamlScalar("!!str", key), value},
	}
}

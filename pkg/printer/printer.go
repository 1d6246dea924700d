package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/adtkit/pkg/ast"
)

const (
	DefaultIndentSize     = 2
	DefaultMaxDepth       = 0
	DefaultMaxStringBytes = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"

	// FormatADT outputs canonical ADT text.
	FormatADT Format = "adt"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatADT}

// ParseFormat returns the format named s. The empty string selects
// FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, yaml or adt)", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text and yaml).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels are printed (0 = unlimited). Deeper
	// groups are summarized by their child count. Ignored by FormatADT,
	// whose output must parse back to the same tree.
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxStringBytes truncates long strings in text output. Set to 0 for
	// no limit.
	// Default: 64
	MaxStringBytes int

	// ShowFields labels node arguments with their schema field names when
	// the node carries a definition.
	// Default: true
	ShowFields bool

	// Compact and TrailingComma tune FormatADT output.
	Compact       bool
	TrailingComma bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		MaxStringBytes: DefaultMaxStringBytes,
		ShowFields:     true,
	}
}

// Printer writes value trees in one of several formats.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	v, _ := adt.ParseFile("prog.adt", bir.Schema(), adt.DefaultOptions())
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(v)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w}
}

// Print writes v in the configured format.
func (p *Printer) Print(v ast.Value) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(v)
	case FormatYAML:
		return p.printYAML(v)
	case FormatADT:
		if err := ast.RenderTo(p.writer, v, ast.RenderOptions{
			Compact:       p.opts.Compact,
			TrailingComma: p.opts.TrailingComma,
		}); err != nil {
			return err
		}
		_, err := io.WriteString(p.writer, "\n")
		return err
	case FormatText, "":
		return p.printText(v)
	default:
		return fmt.Errorf("unknown output format %q", p.opts.Format)
	}
}

// fieldNames returns the labels for the arguments of n, or nil when n has
// no definition or labels are disabled.
func (p *Printer) fieldNames(n *ast.Node) []string {
	if !p.opts.ShowFields || n.Def() == nil {
		return nil
	}
	return n.Def().Fields()
}

// expand reports whether children at depth+1 are printed.
func (p *Printer) expand(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth+1 < p.opts.MaxDepth
}

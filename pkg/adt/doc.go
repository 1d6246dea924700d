/*
Package adt parses ADT text, the constructor-application notation binary
analysis tools use to dump whole programs, into an ast.Value tree.

# Quick Start

Parse a project dump with the bundled IR schema:

	v, err := adt.ParseFile("prog.adt", bir.Schema(), adt.Options{
	    LegacyHexTags: bir.LegacyHexTags,
	})
	if err != nil {
	    log.Fatal(err)
	}
	proj, _ := bir.AsProject(v)
	main, ok := proj.Program().FindSub("@main")

Parse anything, building generic nodes for every tag:

	v, err := adt.ParseString(`Foo(1, "two", [3])`, nil, adt.Options{})

# Inputs

ParseFile maps the file into memory. Gzip and zstd containers are detected
by their magic bytes and decompressed before parsing; a byte order mark or
Options.Encoding selects transcoding of UTF-16 and single-byte encodings.

# Resources

The parser is iterative, so nesting depth is bounded by Options.Limits and
memory, not by the goroutine stack. For very large dumps set DisableGC to
suspend the collector while the tree is built, and Progress to receive
periodic reports with the smoothed rate and the remaining time.

# Errors

Every failure is a *types.Error. Syntax errors carry the byte offset of the
defect and an excerpt of the surrounding text:

	if errors.Is(err, types.ErrInput) {
	    var e *types.Error
	    errors.As(err, &e)
	    fmt.Println(e.Offset, e.Excerpt)
	}
*/
package adt

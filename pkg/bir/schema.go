package bir

import "github.com/joshuapare/adtkit/pkg/ast"

// LegacyHexTags are the applications whose bare integer arguments are
// written in hexadecimal without a prefix.
var LegacyHexTags = []string{"Section", "Region"}

// Tag names used by the typed views.
const (
	TagProject  = "Project"
	TagProgram  = "Program"
	TagSub      = "Sub"
	TagTid      = "Tid"
	TagSections = "Sections"
	TagSection  = "Section"
)

// BinOps lists the binary operator tags in declaration order.
var BinOps = []string{
	"PLUS", "MINUS", "TIMES", "DIVIDE", "SDIVIDE", "MOD", "SMOD",
	"LSHIFT", "RSHIFT", "ARSHIFT", "AND", "OR", "XOR",
	"EQ", "NEQ", "LT", "LE", "SLT", "SLE",
}

// UnOps lists the unary operator tags.
var UnOps = []string{"NEG", "NOT"}

// Casts lists the cast tags.
var Casts = []string{"UNSIGNED", "SIGNED", "HIGH", "LOW"}

// Schema returns a fresh schema for project dumps. Each call builds a new
// value; the result is read-only and may be shared between goroutines.
func Schema() *ast.Schema {
	s := ast.NewSchema()

	// Project level.
	s.Define(TagProject, ast.RootTag, "attrs", "sections", "memmap", "program")
	s.Define("Attr", ast.RootTag, "key", "value")
	s.Map("Attrs", "")
	s.Map("Values", "")
	s.Define(TagTid, ast.RootTag, "number", "name?")
	s.Define("Region", ast.RootTag, "beg", "end")
	s.Define("Section", ast.RootTag, "name", "beg", "data")
	s.Map(TagSections, "name")
	s.Define("Annotation", ast.RootTag, "region", "attr")
	s.Seq("Memmap")

	// Terms.
	s.Abstract("Term", ast.RootTag)
	s.Define(TagProgram, "Term", "id", "attrs", "subs")
	s.Define(TagSub, "Term", "id", "attrs", "name", "args", "blks")
	s.Define("Arg", "Term", "id", "attrs", "var", "exp", "intent?")
	s.Define("Blk", "Term", "id", "attrs", "phis", "defs", "jmps")
	s.Define("Def", "Term", "id", "attrs", "lhs", "rhs")
	s.Define("Phi", "Term", "id", "attrs", "lhs", "values")
	s.Abstract("Jmp", "Term")
	for _, tag := range []string{"Goto", "Call", "Ret", "Exn"} {
		s.Define(tag, "Jmp", "id", "attrs", "cond", "target")
	}
	for _, tag := range []string{"Subs", "Args", "Blks", "Phis", "Defs", "Jmps"} {
		s.Seq(tag)
	}

	s.Abstract("Label", ast.RootTag)
	s.Define("Direct", "Label", "tid")
	s.Define("Indirect", "Label", "exp")

	s.Abstract("Intent", ast.RootTag)
	s.Define("In", "Intent")
	s.Define("Out", "Intent")
	s.Define("Both", "Intent")

	// Expressions.
	s.Abstract("Exp", ast.RootTag)
	s.Define("Load", "Exp", "mem", "idx", "endian", "size")
	s.Define("Store", "Exp", "mem", "idx", "value", "endian", "size")
	s.Abstract("BinOp", "Exp")
	for _, tag := range BinOps {
		s.Define(tag, "BinOp", "lhs", "rhs")
	}
	s.Abstract("UnOp", "Exp")
	for _, tag := range UnOps {
		s.Define(tag, "UnOp", "arg")
	}
	s.Define("Var", "Exp", "name", "type")
	s.Define("Int", "Exp", "value", "size")
	s.Abstract("Cast", "Exp")
	for _, tag := range Casts {
		s.Define(tag, "Cast", "size", "exp")
	}
	s.Define("Let", "Exp", "var", "value", "exp")
	s.Define("Unknown", "Exp", "desc", "type")
	s.Define("Ite", "Exp", "cond", "yes", "no")
	s.Define("Extract", "Exp", "hb", "lb", "exp")
	s.Define("Concat", "Exp", "lhs", "rhs")

	s.Abstract("Type", ast.RootTag)
	s.Define("Imm", "Type", "size")
	s.Define("Mem", "Type", "addr_size", "value_size")

	s.Abstract("Endian", ast.RootTag)
	s.Define("LittleEndian", "Endian")
	s.Define("BigEndian", "Endian")

	return s
}

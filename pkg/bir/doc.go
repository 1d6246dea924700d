// Package bir defines the schema of the intermediate representation dumped
// by the binary analysis platform: projects, programs, subroutines, blocks,
// terms, and the expression language they carry.
//
// Schema returns an ast.Schema usable both as the parser's Registry and as
// the visitor's Hierarchy:
//
//	s := bir.Schema()
//	v, err := adt.ParseFile("prog.adt", s, adt.Options{LegacyHexTags: bir.LegacyHexTags})
//	proj, _ := bir.AsProject(v)
//	main, ok := proj.Program().FindSub("@main")
//
// The typed views in this package (Project, Program, Sub, Tid) are thin
// wrappers over *ast.Node that read fields by name.
package bir

package testutil

// Fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// SampleProject is a small but complete project dump: two subroutines,
	// every jump kind, the whole expression language and legacy hex
	// sections.
	SampleProject = "testdata/adt/sample.adt"
)

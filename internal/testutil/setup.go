package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a fixture by its path relative to the repository root.
// Calls t.Skip if the fixture is not found.
//
// Example:
//
//	data := testutil.LoadFixture(t, testutil.SampleProject)
func LoadFixture(t testing.TB, relativePath string) []byte {
	t.Helper()
	data, err := os.ReadFile(ResolvePath(t, relativePath))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return data
}

// CopyFixture copies a fixture into a temporary directory and returns the
// new path. The copy is removed with the test's temp dir.
func CopyFixture(t testing.TB, relativePath, tempName string) string {
	t.Helper()
	dst := filepath.Join(t.TempDir(), tempName)
	copyFile(t, ResolvePath(t, relativePath), dst)
	return dst
}

// WriteTemp writes data to a file in a temporary directory and returns its
// path.
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

// ResolvePath attempts to find a fixture by trying multiple path resolutions.
// This handles the fact that tests may be run from different working directories.
func ResolvePath(t testing.TB, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From a top-level package (e.g., examples/)
		"../../" + relativePath,       // From package two levels deep (e.g., pkg/adt/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// If not found, skip the test
	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t testing.TB, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Fixture not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy fixture: %v", copyErr)
	}
}

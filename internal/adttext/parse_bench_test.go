package adttext

import (
	"strings"
	"testing"

	"github.com/joshuapare/adtkit/internal/testutil"
	"github.com/joshuapare/adtkit/pkg/ast"
)

// ============================================================================
// Synthetic Input Benchmarks
// ============================================================================

func BenchmarkParse_Wide(b *testing.B) {
	data := []byte(testutil.WideList(100_000))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		if _, err := Parse(data, ast.Permissive(), Config{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Deep(b *testing.B) {
	data := []byte(testutil.DeepTuple(100_000))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		if _, err := Parse(data, ast.Permissive(), Config{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Program(b *testing.B) {
	data := []byte(testutil.Program(200, 20))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		if _, err := Parse(data, ast.Permissive(), Config{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Strings(b *testing.B) {
	data := []byte("[" + strings.Repeat(`"escaped \"quote\" and \\ slash \x41", `, 20_000) + "]")
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		if _, err := Parse(data, ast.Permissive(), Config{}); err != nil {
			b.Fatal(err)
		}
	}
}

package adt_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/adtkit/internal/testutil"
	"github.com/joshuapare/adtkit/pkg/adt"
	"github.com/joshuapare/adtkit/pkg/ast"
	"github.com/joshuapare/adtkit/pkg/bir"
	"github.com/joshuapare/adtkit/pkg/types"
)

func birOptions() adt.Options {
	opts := adt.DefaultOptions()
	opts.LegacyHexTags = bir.LegacyHexTags
	return opts
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestParseFile_Sample(t *testing.T) {
	path := testutil.ResolvePath(t, testutil.SampleProject)

	v, err := adt.ParseFile(path, bir.Schema(), birOptions())
	require.NoError(t, err)

	proj, ok := bir.AsProject(v)
	require.True(t, ok)
	sub, ok := proj.Program().FindSub("@puts")
	require.True(t, ok)
	assert.Equal(t, "puts", sub.Name())
}

func TestParseFile_Compressed(t *testing.T) {
	plain := testutil.LoadFixture(t, testutil.SampleProject)
	want, err := adt.Parse(plain, bir.Schema(), birOptions())
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		kind adt.Compression
	}{
		{"gzip", gzipped(t, plain), adt.CompressionGzip},
		{"zstd", zstded(t, plain), adt.CompressionZstd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, adt.DetectCompression(tt.data))
			path := testutil.WriteTemp(t, "sample.adt."+tt.name, tt.data)

			got, err := adt.ParseFile(path, bir.Schema(), birOptions())
			require.NoError(t, err)
			assert.True(t, ast.Equal(want, got))
		})
	}
}

func TestParse_CorruptContainer(t *testing.T) {
	for name, data := range map[string][]byte{
		"gzip": {0x1f, 0x8b, 0x08, 0x00, 0xde, 0xad},
		"zstd": {0x28, 0xb5, 0x2f, 0xfd, 0x00, 0x01, 0x02},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := adt.Parse(data, nil, adt.Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrInput)
			assert.Contains(t, err.Error(), "corrupt "+name)
		})
	}
}

func TestParse_DecompressedSizeLimit(t *testing.T) {
	text := []byte("[" + strings.Repeat("0x0, ", 1000) + "]")
	opts := adt.Options{Limits: adt.Limits{MaxInputSize: 100}}

	for name, data := range map[string][]byte{
		"gzip": gzipped(t, text),
		"zstd": zstded(t, text),
	} {
		t.Run(name, func(t *testing.T) {
			require.Less(t, len(data), 100)
			_, err := adt.Parse(data, nil, opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrLimit)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := adt.ParseFile(filepath.Join(t.TempDir(), "nope.adt"), nil, adt.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFile_ErrorNamesFile(t *testing.T) {
	path := testutil.WriteTemp(t, "bad.adt", []byte("Foo(1,,2)"))
	_, err := adt.ParseFile(path, nil, adt.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInput)
	assert.Contains(t, err.Error(), path)

	k, ok := types.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindInput, k)
}

func TestParseString_NilRegistryIsPermissive(t *testing.T) {
	v, err := adt.ParseString(`Foo(1, "two", [Bar()])`, nil, adt.Options{})
	require.NoError(t, err)
	n, ok := v.(*ast.Node)
	require.True(t, ok)
	assert.Equal(t, "Foo", n.Tag())
	assert.Equal(t, 3, n.Len())
}

func TestParseReader(t *testing.T) {
	v, err := adt.ParseReader(strings.NewReader("(1, 2)"), nil, adt.Options{})
	require.NoError(t, err)
	assert.Equal(t, ast.Tuple{ast.IntOf(1), ast.IntOf(2)}, v)
}

func TestParse_Encoding(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	data, err := enc.Bytes([]byte(`Str("hi")`))
	require.NoError(t, err)

	v, err := adt.Parse(data, nil, adt.Options{Encoding: "UTF-16LE"})
	require.NoError(t, err)
	assert.Equal(t, ast.Str("hi"), v.(*ast.Node).At(0))

	_, err = adt.Parse(data, nil, adt.Options{Encoding: "EBCDIC"})
	assert.ErrorIs(t, err, types.ErrUnsupported)
}

func TestParse_DisableGCRestoresSetting(t *testing.T) {
	old := debug.SetGCPercent(77)
	defer debug.SetGCPercent(old)

	_, err := adt.ParseString(testutil.Program(2, 2), nil, adt.Options{DisableGC: true})
	require.NoError(t, err)
	assert.Equal(t, 77, debug.SetGCPercent(77))
}

func TestParse_DisableGCRestoresOnError(t *testing.T) {
	old := debug.SetGCPercent(55)
	defer debug.SetGCPercent(old)

	_, err := adt.ParseString("(", nil, adt.Options{DisableGC: true})
	require.Error(t, err)
	assert.Equal(t, 55, debug.SetGCPercent(55))
}

func TestParse_ProgressFinalReport(t *testing.T) {
	text := testutil.Program(20, 10)
	var reports []adt.Report
	_, err := adt.ParseString(text, bir.Schema(), adt.Options{
		LegacyHexTags:    bir.LegacyHexTags,
		Progress:         func(r adt.Report) { reports = append(reports, r) },
		ProgressInterval: time.Hour,
	})
	require.NoError(t, err)

	require.NotEmpty(t, reports)
	last := reports[len(reports)-1]
	assert.True(t, last.Final)
	assert.Equal(t, int64(len(text)), last.Done)
	assert.Equal(t, int64(len(text)), last.Total)
	assert.InDelta(t, 100.0, last.Percent, 0.001)
}

func TestParse_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := adt.Parse(gzipped(t, []byte("[1]")), nil, adt.Options{Logger: logger})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "decompressed input")
	assert.Contains(t, out, "format=gzip")
	assert.Contains(t, out, "msg=parsed")
}

func TestParse_Limits(t *testing.T) {
	opts := adt.Options{Limits: ast.StrictLimits()}
	opts.Limits.MaxDepth = 8

	_, err := adt.ParseString(testutil.DeepTuple(16), nil, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLimit)
}

func TestCompression_String(t *testing.T) {
	assert.Equal(t, "none", adt.CompressionNone.String())
	assert.Equal(t, "gzip", adt.CompressionGzip.String())
	assert.Equal(t, "zstd", adt.CompressionZstd.String())
	assert.Equal(t, adt.CompressionNone, adt.DetectCompression([]byte("Foo()")))
	assert.Equal(t, adt.CompressionNone, adt.DetectCompression(nil))
}

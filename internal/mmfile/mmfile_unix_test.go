//go:build unix

package mmfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_ReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.adt")
	want := []byte(`Project(Attrs([]), Sections([]), Memmap([]), Program(Tid(0x1), Attrs([]), Subs([])))`)
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	assert.Equal(t, want, data)
	require.NoError(t, release())
	// A second release is a no-op.
	require.NoError(t, release())
}

func TestMap_ZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.adt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	require.NotNil(t, release)
	assert.NoError(t, release())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.adt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMap_Directory(t *testing.T) {
	_, _, err := Map(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestPreFault_MultiplePages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	path := filepath.Join(t.TempDir(), "pages.adt")
	want := bytes.Repeat([]byte("0x1, "), 3*pageSize)
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, release()) }()

	require.NoError(t, PreFault(data))
	assert.Len(t, data, len(want))
}

func TestPreFault_Empty(t *testing.T) {
	assert.NoError(t, PreFault(nil))
	assert.NoError(t, touchPages(nil))
}

func TestTouchPages_HeapBuffer(t *testing.T) {
	assert.NoError(t, touchPages(make([]byte, pageSize+1)))
}

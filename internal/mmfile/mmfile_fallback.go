//go:build !unix

package mmfile

import "os"

// Map reads the entire file when mmap is not available. The release
// function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}

func noop() error { return nil }

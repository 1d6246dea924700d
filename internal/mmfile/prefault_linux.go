//go:build linux

package mmfile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// PreFault faults in every page of a mapping. MADV_POPULATE_READ (Linux
// 5.14+) reports inaccessible pages as EFAULT; older kernels fall back to
// reading one byte per page under SetPanicOnFault.
func PreFault(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Madvise(data, unix.MADV_POPULATE_READ)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EINVAL) && !errors.Is(err, unix.ENOSYS) {
		return fmt.Errorf("mmfile: madvise populate: %w", err)
	}
	return touchPages(data)
}

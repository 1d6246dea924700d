//go:build !linux

package mmfile

// PreFault faults in every page of a mapping by reading one byte per page
// under SetPanicOnFault.
func PreFault(data []byte) error {
	return touchPages(data)
}

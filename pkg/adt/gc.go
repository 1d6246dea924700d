package adt

import (
	"runtime"
	"runtime/debug"
)

// suspendGC turns the collector off and returns a function restoring the
// previous setting. The restore also runs a collection so the garbage of
// the parse is reclaimed before the caller starts using the tree.
func suspendGC() func() {
	old := debug.SetGCPercent(-1)
	return func() {
		debug.SetGCPercent(old)
		runtime.GC()
	}
}

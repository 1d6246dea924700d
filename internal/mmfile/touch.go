package mmfile

import (
	"fmt"
	"runtime/debug"
)

const pageSize = 4096

func touchPages(data []byte) (err error) {
	if len(data) == 0 {
		return nil
	}
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mmfile: memory access fault: %v", r)
		}
	}()

	var sink byte
	for i := 0; i < len(data); i += pageSize {
		sink ^= data[i]
	}
	sink ^= data[len(data)-1]
	_ = sink
	return nil
}

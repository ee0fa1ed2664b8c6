// Package mem provides aligned slice allocation.
package mem

import (
	"unsafe"
)

// Alignment is the boundary, in bytes, that allocations start on. 64
// covers every cache-line and vector-register width in current use.
const Alignment = 64

// aligned returns a byte slice of n bytes whose first element sits on
// an Alignment boundary. It over-allocates by one alignment unit and
// reslices; the padded backing array stays reachable through the
// returned slice.
func aligned(n int) []byte {
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n+Alignment)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := (Alignment - addr%Alignment) % Alignment
	return buf[off : off+uintptr(n) : off+uintptr(n)]
}

// Float32s allocates an aligned []float32 of length n.
func Float32s(n int) []float32 {
	if n <= 0 {
		return nil
	}
	b := aligned(n * 4)
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), n)
}

// Uint16s allocates an aligned []uint16 of length n.
func Uint16s(n int) []uint16 {
	if n <= 0 {
		return nil
	}
	b := aligned(n * 2)
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), n)
}

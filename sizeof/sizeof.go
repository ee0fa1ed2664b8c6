// Package sizeof models the resident and wire footprints of the two
// vector representations.
//
// The loose estimate is an architecture-level cost: it counts the
// container and boxing overhead the runtime actually imposes, measured
// from real layouts at init instead of assumed constants, so it stays
// correct if those layouts ever change.
package sizeof

import (
	"unsafe"

	"github.com/hupe1980/vecbench/vector"
)

// Boxed-representation overheads, taken from the running binary.
var (
	// headerBytes is a slice header: the outer container and each row
	// cost one apiece.
	headerBytes = int64(unsafe.Sizeof([]any{}))
	// ifaceBytes is the interface value each boxed scalar occupies in
	// its row's backing array.
	ifaceBytes = int64(unsafe.Sizeof(any(nil)))
	// cellBytes is the heap cell the interface points at.
	cellBytes = int64(unsafe.Sizeof(float64(0)))
)

// Loose estimates the resident footprint of boxed rows: the outer
// slice header, one row header per row in the outer backing array, and
// per scalar an interface slot plus its heap cell.
func Loose(rows []vector.Loose) int64 {
	total := headerBytes + int64(len(rows))*headerBytes
	for _, row := range rows {
		total += int64(row.Dim()) * (ifaceBytes + cellBytes)
	}
	return total
}

// Packed returns the packed buffer's footprint: exactly
// count * dimension * element width, nothing else.
func Packed(p *vector.Packed) int64 {
	return p.ByteSize()
}

// Ratio derives the bloat ratio between a loose and a packed footprint.
// Any real boxed representation yields a ratio of at least 1.
func Ratio(loose, packed int64) float64 {
	if packed <= 0 {
		return 0
	}
	return float64(loose) / float64(packed)
}

// Package kernel exposes the similarity kernel shared by both measured
// code paths. The arithmetic lives in internal/simd and is portable Go
// with a fixed evaluation order, so the kernel contributes the exact
// same cost to each path and the same bits to each run.
package kernel

import (
	"github.com/hupe1980/vecbench/internal/simd"
	"github.com/hupe1980/vecbench/vector"
)

// Dot returns the inner product of two equal-length float32 slices.
// Matching lengths are the caller's responsibility.
func Dot(a, b []float32) float32 {
	return simd.Dot(a, b)
}

// DotProducts computes the inner product of every buffer row against
// the query, in row order. The result has length buf.Count().
//
// A query whose dimension disagrees with the buffer is fatal and
// yields *vector.ErrDimensionMismatch.
func DotProducts(buf *vector.Packed, q vector.Query) ([]float32, error) {
	if buf.Dim() != q.Dim() {
		return nil, &vector.ErrDimensionMismatch{Expected: buf.Dim(), Actual: q.Dim()}
	}

	out := make([]float32, buf.Count())

	if flat := buf.Float32Data(); flat != nil {
		simd.DotBatch(q, flat, buf.Dim(), out)
		return out, nil
	}

	// Float16 storage: widen one row at a time, then run the same
	// float32 kernel.
	scratch := make([]float32, buf.Dim())
	for i := range out {
		out[i] = simd.Dot(q, buf.RowInto(scratch, i))
	}
	return out, nil
}

// HostISA describes the host's vector capability, e.g. "amd64/avx2".
// It is informational: the kernel never dispatches on it.
func HostISA() string {
	return simd.Describe()
}

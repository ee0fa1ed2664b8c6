package simd

// Dot returns the inner product of a and b, accumulated in float32
// across four independent partial sums. The evaluation order is fixed,
// so equal inputs always produce bit-identical results.
//
// SAFETY: assumes len(b) >= len(a); the caller guarantees matching
// dimensions.
func Dot(a, b []float32) float32 {
	var s0, s1, s2, s3 float32

	i := 0
	for ; i+3 < len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}

	return (s0 + s1) + (s2 + s3)
}

// DotBatch computes the inner product of query against each row of
// targets, a flattened row-major array of dim-wide vectors, writing
// one result per row into out. Rows beyond len(out) or a short query
// are ignored rather than read out of bounds.
func DotBatch(query []float32, targets []float32, dim int, out []float32) {
	if dim <= 0 || len(query) < dim {
		return
	}

	q := query[:dim]
	n := len(targets) / dim
	if len(out) < n {
		n = len(out)
	}

	for i := 0; i < n; i++ {
		row := targets[i*dim : (i+1)*dim]
		out[i] = Dot(q, row)
	}
}

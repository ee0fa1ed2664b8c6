package vector

import (
	"github.com/hupe1980/vecbench/internal/f16"
	"github.com/hupe1980/vecbench/internal/mem"
)

// Pack converts boxed rows into a packed buffer of the given element
// type. It visits every scalar of every row, narrows it to the target
// width, and writes it at its row-major offset.
//
// Pack performs the full conversion on every call. It must never
// cache, reuse, or short-circuit: the repeated-conversion cost is what
// the standard path measures.
func Pack(rows []Loose, et ElementType) (*Packed, error) {
	if et != Float32 && et != Float16 {
		return nil, &ErrInvalidElementWidth{Width: et.Width()}
	}
	if len(rows) == 0 {
		return nil, &ErrInvalidCount{Count: 0}
	}

	dim := rows[0].Dim()
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	p := &Packed{count: len(rows), dim: dim, etype: et}
	if et == Float16 {
		p.f16 = mem.Uint16s(p.count * dim)
	} else {
		p.f32 = mem.Float32s(p.count * dim)
	}

	for i, row := range rows {
		if row.Dim() != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: row.Dim()}
		}
		base := i * dim
		for j, v := range row {
			f, ok := narrow(v)
			if !ok {
				return nil, &ErrScalarType{Row: i, Index: j, Value: v}
			}
			if p.f16 != nil {
				p.f16[base+j] = f16.Encode(f)
			} else {
				p.f32[base+j] = f
			}
		}
	}

	return p, nil
}

// narrow unboxes a scalar and narrows it to float32.
func narrow(v any) (float32, bool) {
	switch x := v.(type) {
	case float64:
		return float32(x), true
	case float32:
		return x, true
	case int:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	default:
		return 0, false
	}
}

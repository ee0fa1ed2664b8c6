// Package vector defines the two representations under comparison: a
// boxed, per-element "loose" form and a flat fixed-stride "packed"
// form, together with the conversion between them.
//
// The conversion is deliberately a first-class, always-paid operation.
// The whole point of keeping both representations explicit is that the
// cost difference being measured is a property of the data model, not
// of hidden library behavior.
package vector

// Loose is the boxed representation of one vector: every scalar is an
// independent interface value pointing at a heap-allocated float64.
// This is the shape request payloads arrive in before any packing.
//
// A Loose is read-only once built. All rows of a run share one
// dimension.
type Loose []any

// Dim returns the number of scalars in the vector.
func (l Loose) Dim() int { return len(l) }

// Query is a single packed query vector, generated once per run and
// treated as immutable.
type Query []float32

// Dim returns the query's dimension.
func (q Query) Dim() int { return len(q) }

// ElementType is the fixed-width numeric encoding of a packed buffer.
type ElementType uint8

const (
	// Float32 is IEEE-754 single precision, 4 bytes per element.
	Float32 ElementType = iota
	// Float16 is IEEE-754 binary16 storage, 2 bytes per element.
	// Arithmetic still happens in float32 after widening.
	Float16
)

func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// Width returns the element size in bytes, or 0 for an unknown type.
func (t ElementType) Width() int {
	switch t {
	case Float32:
		return 4
	case Float16:
		return 2
	default:
		return 0
	}
}

// ElementTypeForWidth maps a configured byte width onto its element
// type. Only 4 (float32) and 2 (float16) are recognized.
func ElementTypeForWidth(width int) (ElementType, error) {
	switch width {
	case 4:
		return Float32, nil
	case 2:
		return Float16, nil
	default:
		return 0, &ErrInvalidElementWidth{Width: width}
	}
}

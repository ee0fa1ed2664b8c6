// Package audit checks that round-tripping a value through a
// reduced-width packed encoding stays inside the error bound that
// encoding guarantees.
package audit

import (
	"math"

	"github.com/hupe1980/vecbench/internal/f16"
	"github.com/hupe1980/vecbench/vector"
)

// Pass bounds derived from each format's guaranteed decimal precision:
// single precision carries a bit over 7 significant digits, binary16 a
// bit over 3.
const (
	float32Threshold = 1e-7
	float16Threshold = 1e-3
)

// Threshold returns the pass bound for an element type. An unknown
// type gets 0, so nothing can pass it.
func Threshold(et vector.ElementType) float64 {
	switch et {
	case vector.Float32:
		return float32Threshold
	case vector.Float16:
		return float16Threshold
	default:
		return 0
	}
}

// Result is the outcome of one round-trip audit.
type Result struct {
	Value       float64
	Stored      float64
	AbsError    float64
	Threshold   float64
	ElementType vector.ElementType
}

// Passed reports whether the measured error is strictly under the
// threshold. A non-finite error never passes.
func (r Result) Passed() bool {
	return r.AbsError < r.Threshold
}

// RoundTrip encodes value into the element format, decodes it back,
// and measures |original - decoded|. It is pure: a given value and
// format always produce the same error.
func RoundTrip(value float64, et vector.ElementType) Result {
	r := Result{
		Value:       value,
		ElementType: et,
		Threshold:   Threshold(et),
	}

	switch et {
	case vector.Float16:
		r.Stored = float64(f16.Decode(f16.Encode(float32(value))))
	default:
		r.Stored = float64(float32(value))
	}

	r.AbsError = math.Abs(value - r.Stored)
	return r
}

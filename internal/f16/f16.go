// Package f16 converts between IEEE-754 binary16 bit patterns and float32.
//
// binary16 is a storage format here: buffers hold the raw 16-bit patterns
// and all arithmetic happens after widening to float32.
package f16

import (
	"math"
	"math/bits"
)

const (
	signMask16 = 0x8000
	expMask16  = 0x7C00
	fracMask16 = 0x03FF

	expMask32  = 0x7F800000
	fracMask32 = 0x007FFFFF

	// Canonical quiet NaN pattern for encode; payloads are not preserved.
	qNaN16 = 0x7E00
)

// Decode widens a binary16 bit pattern to float32.
func Decode(h uint16) float32 {
	sign := uint32(h&signMask16) << 16
	exp := uint32(h&expMask16) >> 10
	frac := uint32(h & fracMask16)

	if exp == 0x1F {
		if frac == 0 {
			return math.Float32frombits(sign | expMask32)
		}
		return math.Float32frombits(sign | expMask32 | frac<<13)
	}

	if exp == 0 {
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: value is frac * 2^-24. Renormalize for float32,
		// which has enough exponent range to hold it as a normal.
		n := uint32(bits.Len32(frac))
		e32 := 127 + n - 25
		f32 := (frac ^ (1 << (n - 1))) << (24 - n)
		return math.Float32frombits(sign | e32<<23 | f32)
	}

	return math.Float32frombits(sign | (exp+127-15)<<23 | frac<<13)
}

// Encode narrows a float32 to a binary16 bit pattern, rounding to
// nearest with ties to even. Values beyond the binary16 range become
// infinities; NaN becomes the canonical quiet NaN.
func Encode(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & signMask16
	exp := int32(b&expMask32) >> 23
	frac := b & fracMask32

	if exp == 0xFF {
		if frac == 0 {
			return sign | expMask16
		}
		return sign | qNaN16
	}

	// float32 zeros and subnormals are below half the smallest binary16
	// subnormal and flush to signed zero.
	if exp == 0 {
		return sign
	}

	e16 := exp - 127 + 15
	switch {
	case e16 >= 0x1F:
		return sign | expMask16

	case e16 <= 0:
		if e16 < -10 {
			return sign
		}
		// Subnormal result: shift the full 24-bit significand down so
		// the effective exponent becomes -14, rounding the bits shifted
		// out. A carry into bit 10 yields the smallest normal, which is
		// the correct rounded result.
		sig := frac | 0x00800000
		return sign | uint16(roundShift(sig, uint32(14-e16)))

	default:
		m := roundShift(frac, 13)
		// Rounding can carry out of the 10 fraction bits; the carry
		// lands in the exponent, which is exactly what IEEE wants.
		v := uint32(e16)<<10 + m
		if v >= uint32(expMask16) {
			return sign | expMask16
		}
		return sign | uint16(v)
	}
}

// roundShift drops the low shift bits of v, rounding to nearest with
// ties to even.
func roundShift(v uint32, shift uint32) uint32 {
	q := v >> shift
	rem := v & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// DecodeSlice widens src into dst, which must be at least len(src) long.
func DecodeSlice(dst []float32, src []uint16) {
	for i, h := range src {
		dst[i] = Decode(h)
	}
}

// EncodeSlice narrows src into dst, which must be at least len(src) long.
func EncodeSlice(dst []uint16, src []float32) {
	for i, f := range src {
		dst[i] = Encode(f)
	}
}

package vector

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/vecbench/internal/f16"
)

// Packed is the flat representation: count rows of dim elements laid
// out row-major at a fixed stride with zero per-element overhead.
// Instances are built by Pack and never mutated afterward.
type Packed struct {
	count int
	dim   int
	etype ElementType

	f32 []float32 // backing for Float32
	f16 []uint16  // binary16 bit patterns for Float16
}

// Count returns the number of rows.
func (p *Packed) Count() int { return p.count }

// Dim returns the per-row dimension.
func (p *Packed) Dim() int { return p.dim }

// Type returns the element encoding.
func (p *Packed) Type() ElementType { return p.etype }

// ByteSize returns the exact payload size: count * dim * element
// width. There are no headers and no padding to account for.
func (p *Packed) ByteSize() int64 {
	return int64(p.count) * int64(p.dim) * int64(p.etype.Width())
}

// At returns the element at row i, column j, widened to float32.
func (p *Packed) At(i, j int) float32 {
	if p.etype == Float16 {
		return f16.Decode(p.f16[i*p.dim+j])
	}
	return p.f32[i*p.dim+j]
}

// Float32Data returns the flat row-major backing slice, or nil when
// the buffer stores float16 elements. Callers must not modify it.
func (p *Packed) Float32Data() []float32 {
	return p.f32
}

// RowInto widens row i into dst and returns dst[:dim]. dst must have
// capacity for at least dim elements.
func (p *Packed) RowInto(dst []float32, i int) []float32 {
	dst = dst[:p.dim]
	off := i * p.dim
	if p.etype == Float16 {
		f16.DecodeSlice(dst, p.f16[off:off+p.dim])
		return dst
	}
	copy(dst, p.f32[off:off+p.dim])
	return dst
}

// Bytes serializes the raw little-endian element payload, exactly
// ByteSize() bytes. This is the wire form of the packed buffer.
func (p *Packed) Bytes() []byte {
	buf := make([]byte, p.ByteSize())
	if p.etype == Float16 {
		for i, h := range p.f16 {
			binary.LittleEndian.PutUint16(buf[i*2:], h)
		}
		return buf
	}
	for i, f := range p.f32 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

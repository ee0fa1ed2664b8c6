package vector

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func looseRows(count, dim int) []Loose {
	rows := make([]Loose, count)
	for i := range rows {
		row := make(Loose, dim)
		for j := range row {
			row[j] = float64(i*dim+j) * 0.5
		}
		rows[i] = row
	}
	return rows
}

func TestPackFloat32(t *testing.T) {
	rows := looseRows(5, 7)

	p, err := Pack(rows, Float32)
	require.NoError(t, err)

	assert.Equal(t, 5, p.Count())
	assert.Equal(t, 7, p.Dim())
	assert.Equal(t, Float32, p.Type())
	assert.Equal(t, int64(5*7*4), p.ByteSize())

	// Row-major order matches the source exactly.
	for i, row := range rows {
		for j, v := range row {
			assert.Equal(t, float32(v.(float64)), p.At(i, j), "row %d col %d", i, j)
		}
	}
}

func TestPackFloat16(t *testing.T) {
	rows := looseRows(3, 4)

	p, err := Pack(rows, Float16)
	require.NoError(t, err)

	assert.Equal(t, Float16, p.Type())
	assert.Equal(t, int64(3*4*2), p.ByteSize())
	assert.Nil(t, p.Float32Data())

	for i, row := range rows {
		for j, v := range row {
			assert.InDelta(t, v.(float64), float64(p.At(i, j)), 1e-2, "row %d col %d", i, j)
		}
	}
}

func TestPackMixedScalarKinds(t *testing.T) {
	rows := []Loose{{float64(1.5), float32(2.5), int(3), int32(4), int64(5)}}

	p, err := Pack(rows, Float32)
	require.NoError(t, err)

	want := []float32{1.5, 2.5, 3, 4, 5}
	for j, w := range want {
		assert.Equal(t, w, p.At(0, j))
	}
}

func TestPackNeverMemoizes(t *testing.T) {
	rows := looseRows(2, 3)

	first, err := Pack(rows, Float32)
	require.NoError(t, err)
	second, err := Pack(rows, Float32)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	// Separate backing storage, not a shared buffer.
	assert.NotSame(t, &first.f32[0], &second.f32[0])
}

func TestPackValidation(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Pack(nil, Float32)
		var ec *ErrInvalidCount
		require.ErrorAs(t, err, &ec)
		assert.Equal(t, 0, ec.Count)
	})

	t.Run("zero dimension", func(t *testing.T) {
		_, err := Pack([]Loose{{}}, Float32)
		var ed *ErrInvalidDimension
		require.ErrorAs(t, err, &ed)
	})

	t.Run("ragged rows", func(t *testing.T) {
		rows := []Loose{{1.0, 2.0, 3.0}, {1.0, 2.0}}
		_, err := Pack(rows, Float32)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 3, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("non-numeric scalar", func(t *testing.T) {
		rows := []Loose{{1.0, "oops", 3.0}}
		_, err := Pack(rows, Float32)
		var st *ErrScalarType
		require.ErrorAs(t, err, &st)
		assert.Equal(t, 0, st.Row)
		assert.Equal(t, 1, st.Index)
	})

	t.Run("unknown element type", func(t *testing.T) {
		_, err := Pack(looseRows(1, 1), ElementType(9))
		var ew *ErrInvalidElementWidth
		require.ErrorAs(t, err, &ew)
	})
}

func TestPackedBytes(t *testing.T) {
	t.Run("float32 little endian", func(t *testing.T) {
		p, err := Pack([]Loose{{1.0, -2.0}}, Float32)
		require.NoError(t, err)

		b := p.Bytes()
		require.Len(t, b, int(p.ByteSize()))

		got := math.Float32frombits(binary.LittleEndian.Uint32(b[0:4]))
		assert.Equal(t, float32(1), got)
		got = math.Float32frombits(binary.LittleEndian.Uint32(b[4:8]))
		assert.Equal(t, float32(-2), got)
	})

	t.Run("float16 width", func(t *testing.T) {
		p, err := Pack([]Loose{{1.0, -2.0}}, Float16)
		require.NoError(t, err)

		b := p.Bytes()
		require.Len(t, b, 4)
		// 1.0 in binary16 is 0x3C00.
		assert.Equal(t, uint16(0x3C00), binary.LittleEndian.Uint16(b[0:2]))
	})
}

func TestRowInto(t *testing.T) {
	rows := looseRows(4, 6)
	scratch := make([]float32, 6)

	for _, et := range []ElementType{Float32, Float16} {
		p, err := Pack(rows, et)
		require.NoError(t, err)

		row := p.RowInto(scratch, 2)
		require.Len(t, row, 6)
		for j := range row {
			assert.InDelta(t, rows[2][j].(float64), float64(row[j]), 1e-2, "%s col %d", et, j)
		}
	}
}

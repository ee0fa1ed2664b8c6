package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTypeWidth(t *testing.T) {
	assert.Equal(t, 4, Float32.Width())
	assert.Equal(t, 2, Float16.Width())
	assert.Equal(t, 0, ElementType(9).Width())
}

func TestElementTypeString(t *testing.T) {
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float16", Float16.String())
	assert.Equal(t, "unknown", ElementType(9).String())
}

func TestElementTypeForWidth(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		et, err := ElementTypeForWidth(4)
		require.NoError(t, err)
		assert.Equal(t, Float32, et)
	})

	t.Run("float16", func(t *testing.T) {
		et, err := ElementTypeForWidth(2)
		require.NoError(t, err)
		assert.Equal(t, Float16, et)
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, w := range []int{0, 1, 3, 8, -4} {
			_, err := ElementTypeForWidth(w)
			var ew *ErrInvalidElementWidth
			require.ErrorAs(t, err, &ew, "width %d", w)
			assert.Equal(t, w, ew.Width)
		}
	})
}

func TestDims(t *testing.T) {
	l := Loose{1.0, 2.0, 3.0}
	assert.Equal(t, 3, l.Dim())

	q := Query{1, 2}
	assert.Equal(t, 2, q.Dim())
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, &ErrDimensionMismatch{Expected: 128, Actual: 64}, "dimension mismatch: expected 128, got 64")
	assert.EqualError(t, &ErrInvalidDimension{Dimension: -1}, "invalid dimension -1: must be positive")
	assert.EqualError(t, &ErrInvalidCount{Count: 0}, "invalid vector count 0: must be positive")
	assert.Contains(t, (&ErrScalarType{Row: 2, Index: 7, Value: "x"}).Error(), "row 2 element 7")
}

func TestErrorsAsDistinguishesTypes(t *testing.T) {
	var err error = &ErrDimensionMismatch{Expected: 4, Actual: 2}

	var dm *ErrDimensionMismatch
	assert.True(t, errors.As(err, &dm))

	var id *ErrInvalidDimension
	assert.False(t, errors.As(err, &id))
}

package sizeof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbench/gen"
	"github.com/hupe1980/vecbench/vector"
)

func TestPackedIsExact(t *testing.T) {
	rng := gen.New(1)

	tests := []struct {
		count, dim int
		et         vector.ElementType
	}{
		{1, 1, vector.Float32},
		{3, 7, vector.Float32},
		{10, 128, vector.Float32},
		{5, 64, vector.Float16},
	}

	for _, tt := range tests {
		rows, err := rng.Loose(tt.count, tt.dim, gen.Uniform)
		require.NoError(t, err)
		p, err := vector.Pack(rows, tt.et)
		require.NoError(t, err)

		want := int64(tt.count) * int64(tt.dim) * int64(tt.et.Width())
		assert.Equal(t, want, Packed(p), "%dx%d %s", tt.count, tt.dim, tt.et)
	}
}

func TestLooseCountsAllOverheads(t *testing.T) {
	rows, err := gen.New(2).Loose(3, 5, gen.Uniform)
	require.NoError(t, err)

	want := headerBytes + 3*headerBytes + 3*5*(ifaceBytes+cellBytes)
	assert.Equal(t, want, Loose(rows))
}

func TestLooseNeverSmallerThanPacked(t *testing.T) {
	rng := gen.New(3)

	for _, et := range []vector.ElementType{vector.Float32, vector.Float16} {
		for _, shape := range [][2]int{{1, 1}, {4, 32}, {50, 96}} {
			rows, err := rng.Loose(shape[0], shape[1], gen.UniformSymmetric)
			require.NoError(t, err)
			p, err := vector.Pack(rows, et)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, Loose(rows), Packed(p), "%v %s", shape, et)
		}
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 4.0, Ratio(240, 60))
	assert.Zero(t, Ratio(100, 0))

	rows, err := gen.New(4).Loose(8, 16, gen.Uniform)
	require.NoError(t, err)
	p, err := vector.Pack(rows, vector.Float32)
	require.NoError(t, err)

	assert.Greater(t, Ratio(Loose(rows), Packed(p)), 1.0)
}

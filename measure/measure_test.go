package measure

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOne(t *testing.T) {
	m, err := One(func() error {
		time.Sleep(5 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Iterations)
	assert.GreaterOrEqual(t, m.Total, 5*time.Millisecond)
	assert.Equal(t, m.Total, m.PerOp())
}

func TestNSumsAcrossIterations(t *testing.T) {
	calls := 0
	m, err := N(10, func() error {
		calls++
		time.Sleep(time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 10, calls)
	assert.Equal(t, 10, m.Iterations)
	assert.GreaterOrEqual(t, m.Total, 10*time.Millisecond)
	assert.GreaterOrEqual(t, m.PerOp(), time.Millisecond)
}

func TestThroughputIdentity(t *testing.T) {
	m := Measurement{Iterations: 50, Total: 2 * time.Second}
	assert.Equal(t, float64(50)/m.Total.Seconds(), m.Throughput())
	assert.InDelta(t, 25.0, m.Throughput(), 1e-9)
}

func TestZeroValueMeasurement(t *testing.T) {
	var m Measurement
	assert.Zero(t, m.PerOp())
	assert.Zero(t, m.Throughput())
}

func TestErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	m, err := One(func() error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Zero(t, m, "no duration may be recorded for a failed attempt")
}

func TestErrorMidLoopStopsIterating(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	m, err := N(10, func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
	assert.Zero(t, m)
}

func TestWarmupRunsOutsideTimedRegion(t *testing.T) {
	calls := 0
	m, err := N(2, func() error {
		calls++
		return nil
	}, WithWarmup(3))
	require.NoError(t, err)

	assert.Equal(t, 5, calls)
	assert.Equal(t, 2, m.Iterations, "warmup repetitions are not counted")
}

func TestWarmupErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	m, err := N(2, func() error { return boom }, WithWarmup(1))
	require.ErrorIs(t, err, boom)
	assert.Zero(t, m)
}

func TestInvalidIterations(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := N(n, func() error { return nil })
		assert.Error(t, err, "iterations=%d", n)
	}
}

func TestWithGC(t *testing.T) {
	m, err := One(func() error { return nil }, WithGC())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Iterations)
}

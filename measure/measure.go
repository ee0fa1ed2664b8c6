// Package measure is the timing harness: it brackets a unit of work
// with Go's monotonic clock and reports totals, per-operation
// latencies, and derived throughput.
//
// Setup belongs outside the timed region. The helpers here time
// exactly the operation they are handed, nothing else.
package measure

import (
	"fmt"
	"runtime"
	"time"
)

// Measurement is the outcome of one timed region.
type Measurement struct {
	Iterations int
	Total      time.Duration
}

// PerOp returns the mean duration of a single operation.
func (m Measurement) PerOp() time.Duration {
	if m.Iterations <= 0 {
		return 0
	}
	return m.Total / time.Duration(m.Iterations)
}

// Throughput returns operations per second, Iterations divided by the
// total wall-clock seconds.
func (m Measurement) Throughput() float64 {
	s := m.Total.Seconds()
	if s <= 0 {
		return 0
	}
	return float64(m.Iterations) / s
}

type options struct {
	warmup int
	gc     bool
}

// Option adjusts how a timed region is run.
type Option func(*options)

// WithWarmup runs op n untimed times before the clock starts.
func WithWarmup(n int) Option {
	return func(o *options) { o.warmup = n }
}

// WithGC forces a collection right before the clock starts, so garbage
// from setup and warmup is not billed to the timed region.
func WithGC() Option {
	return func(o *options) { o.gc = true }
}

// One times a single execution of op.
func One(op func() error, opts ...Option) (Measurement, error) {
	return N(1, op, opts...)
}

// N times iterations executions of op under one clock bracket, summing
// wall-clock time across all repetitions.
//
// An error from op propagates unchanged and no duration is recorded
// for the attempt.
func N(iterations int, op func() error, opts ...Option) (Measurement, error) {
	if iterations <= 0 {
		return Measurement{}, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for i := 0; i < o.warmup; i++ {
		if err := op(); err != nil {
			return Measurement{}, err
		}
	}

	if o.gc {
		runtime.GC()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := op(); err != nil {
			return Measurement{}, err
		}
	}
	total := time.Since(start)

	return Measurement{Iterations: iterations, Total: total}, nil
}

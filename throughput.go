package vecbench

import (
	"context"
	"fmt"

	"github.com/hupe1980/vecbench/kernel"
	"github.com/hupe1980/vecbench/measure"
	"github.com/hupe1980/vecbench/vector"
)

// RunThroughput repeats the scan Iterations times per architecture, with one
// untimed warmup repeat, and derives operations per second from the summed
// wall clock. Each standard repeat re-packs the loose rows from scratch.
func (s *Suite) RunThroughput(ctx context.Context) error {
	log := s.logger.WithSuite("throughput")

	ds, err := s.materialize(ctx, s.cfg.VectorCount)
	if err != nil {
		return fmt.Errorf("throughput: %w", err)
	}

	iters := s.cfg.Iterations

	standard, err := measure.N(iters, func() error {
		packed, err := vector.Pack(ds.rows, s.etype)
		if err != nil {
			return err
		}
		_, err = kernel.DotProducts(packed, ds.query)
		return err
	}, measure.WithWarmup(1), measure.WithGC())
	log.LogArm(ctx, ArchStandard, standard.Total, err)
	if err != nil {
		return fmt.Errorf("throughput: standard arm: %w", err)
	}

	zerocopy, err := measure.N(iters, func() error {
		_, err := kernel.DotProducts(ds.packed, ds.query)
		return err
	}, measure.WithWarmup(1), measure.WithGC())
	log.LogArm(ctx, ArchZeroCopy, zerocopy.Total, err)
	if err != nil {
		return fmt.Errorf("throughput: zero-copy arm: %w", err)
	}

	for _, arm := range []struct {
		arch string
		m    measure.Measurement
	}{
		{ArchStandard, standard},
		{ArchZeroCopy, zerocopy},
	} {
		s.reporter.RecordMetric(MetricRecord{
			Architecture: arm.arch,
			Kind:         OpLatency,
			Name:         "scan-loop",
			Value:        ms(arm.m.Total),
			Unit:         "ms",
		})
		s.reporter.RecordMetric(MetricRecord{
			Architecture: arm.arch,
			Kind:         OpThroughput,
			Name:         "scan-loop",
			Value:        arm.m.Throughput(),
			Unit:         "ops/s",
		})
	}

	return nil
}

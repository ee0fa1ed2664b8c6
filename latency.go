package vecbench

import (
	"context"
	"fmt"

	"github.com/hupe1980/vecbench/kernel"
	"github.com/hupe1980/vecbench/measure"
	"github.com/hupe1980/vecbench/vector"
)

// RunLatency times a single full scan on each architecture. The standard arm
// pays the loose-to-packed conversion inside the timed region on every call;
// the zero-copy arm scans the pre-built buffer. Both arms score the same
// query against the same data with the same kernel.
func (s *Suite) RunLatency(ctx context.Context) error {
	log := s.logger.WithSuite("latency")

	ds, err := s.materialize(ctx, s.cfg.VectorCount)
	if err != nil {
		return fmt.Errorf("latency: %w", err)
	}

	standard, err := measure.One(func() error {
		packed, err := vector.Pack(ds.rows, s.etype)
		if err != nil {
			return err
		}
		_, err = kernel.DotProducts(packed, ds.query)
		return err
	}, measure.WithGC())
	log.LogArm(ctx, ArchStandard, standard.Total, err)
	if err != nil {
		return fmt.Errorf("latency: standard arm: %w", err)
	}

	zerocopy, err := measure.One(func() error {
		_, err := kernel.DotProducts(ds.packed, ds.query)
		return err
	}, measure.WithGC())
	log.LogArm(ctx, ArchZeroCopy, zerocopy.Total, err)
	if err != nil {
		return fmt.Errorf("latency: zero-copy arm: %w", err)
	}

	s.reporter.RecordMetric(MetricRecord{
		Architecture: ArchStandard,
		Kind:         OpLatency,
		Name:         "scan",
		Value:        ms(standard.Total),
		Unit:         "ms",
	})
	s.reporter.RecordMetric(MetricRecord{
		Architecture: ArchZeroCopy,
		Kind:         OpLatency,
		Name:         "scan",
		Value:        ms(zerocopy.Total),
		Unit:         "ms",
	})

	return nil
}

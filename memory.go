package vecbench

import (
	"context"
	"fmt"

	"github.com/hupe1980/vecbench/codec"
	"github.com/hupe1980/vecbench/sizeof"
)

// RunMemory sizes both representations of the same dataset. Resident
// footprints cover the in-memory forms; encoded footprints cover the wire
// forms, with and without block compression. The loose form ships as a
// structured document, the packed form as raw little-endian element bytes.
func (s *Suite) RunMemory(ctx context.Context) error {
	log := s.logger.WithSuite("memory")

	ds, err := s.materialize(ctx, s.cfg.VectorCount)
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	emit := func(arch, name string, bytes int64) {
		s.reporter.RecordMetric(MetricRecord{
			Architecture: arch,
			Kind:         OpMemory,
			Name:         name,
			Value:        float64(bytes),
			Unit:         "bytes",
		})
	}

	looseResident := sizeof.Loose(ds.rows)
	packedResident := sizeof.Packed(ds.packed)
	emit(ArchStandard, "resident", looseResident)
	emit(ArchZeroCopy, "resident", packedResident)
	log.InfoContext(ctx, "resident footprints sized",
		"loose_bytes", looseResident,
		"packed_bytes", packedResident,
	)

	looseJSON, err := codec.Default.Marshal(ds.rows)
	if err != nil {
		return fmt.Errorf("memory: encode loose rows: %w", err)
	}
	emit(ArchStandard, "encoded/json", int64(len(looseJSON)))

	jsonZstd, err := sizeof.CompressedZstd(looseJSON)
	if err != nil {
		return fmt.Errorf("memory: compress loose rows: %w", err)
	}
	emit(ArchStandard, "encoded/json+zstd", jsonZstd)

	looseMsgpack, err := sizeof.EncodedLoose(ds.rows, codec.Msgpack{})
	if err != nil {
		return fmt.Errorf("memory: encode loose rows: %w", err)
	}
	emit(ArchStandard, "encoded/msgpack", looseMsgpack)

	raw := ds.packed.Bytes()
	emit(ArchZeroCopy, "encoded/raw", sizeof.EncodedPacked(ds.packed))

	rawLZ4, err := sizeof.CompressedLZ4(raw)
	if err != nil {
		return fmt.Errorf("memory: compress packed buffer: %w", err)
	}
	emit(ArchZeroCopy, "encoded/raw+lz4", rawLZ4)

	rawZstd, err := sizeof.CompressedZstd(raw)
	if err != nil {
		return fmt.Errorf("memory: compress packed buffer: %w", err)
	}
	emit(ArchZeroCopy, "encoded/raw+zstd", rawZstd)

	return nil
}

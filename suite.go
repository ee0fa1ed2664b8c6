package vecbench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/vecbench/gen"
	"github.com/hupe1980/vecbench/kernel"
	"github.com/hupe1980/vecbench/vector"
)

// RunInfo describes one benchmark run. It is handed to reporting sinks at
// construction so the record stream itself stays free of metadata.
type RunInfo struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Config    Config    `json:"config"`
	ISA       string    `json:"isa"`
	GoVersion string    `json:"go_version"`
}

// NewRunInfo builds run metadata for cfg with a fresh run ID. Build it
// yourself when a sink and a Suite must share the same metadata, then pass
// it to New via WithRunInfo.
func NewRunInfo(cfg Config) RunInfo {
	return RunInfo{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Config:    cfg,
		ISA:       kernel.HostISA(),
		GoVersion: runtime.Version(),
	}
}

// Suite drives the benchmark arms over one shared dataset configuration.
// All methods run on the calling goroutine; cancellation is honored between
// phases, never inside a timed region.
type Suite struct {
	cfg      Config
	info     RunInfo
	reporter Reporter
	logger   *Logger
	rng      *gen.RNG
	dist     gen.Distribution
	etype    vector.ElementType
}

// New validates cfg and prepares a Suite.
func New(cfg Config, optFns ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	etype, err := cfg.ElementType()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	dist, err := cfg.DistributionKind()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	o := applyOptions(optFns)

	info := NewRunInfo(cfg)
	if o.runInfo != nil {
		info = *o.runInfo
		info.Config = cfg
	}
	if o.runID != "" {
		info.RunID = o.runID
	}

	return &Suite{
		cfg:      cfg,
		reporter: o.reporter,
		logger:   o.logger.WithRunID(info.RunID),
		rng:      gen.New(cfg.Seed),
		dist:     dist,
		etype:    etype,
		info:     info,
	}, nil
}

// Info returns the run metadata. Hand it to reporting sinks at construction.
func (s *Suite) Info() RunInfo {
	return s.info
}

// Config returns the effective configuration.
func (s *Suite) Config() Config {
	return s.cfg
}

// RunAll executes latency, throughput, memory and compliance in order.
// Measurement-path errors abort the sequence; compliance findings do not.
func (s *Suite) RunAll(ctx context.Context) error {
	if err := s.RunLatency(ctx); err != nil {
		return err
	}
	if err := s.RunThroughput(ctx); err != nil {
		return err
	}
	if err := s.RunMemory(ctx); err != nil {
		return err
	}
	return s.RunCompliance(ctx)
}

// dataset holds the shared inputs for one suite: the loose rows, the packed
// buffer pre-built for the zero-copy arm, and the query. The rows and the
// buffer carry identical values, so metrics from the two arms compare the
// representations, not the data.
type dataset struct {
	rows   []vector.Loose
	packed *vector.Packed
	query  vector.Query
}

func (s *Suite) materialize(ctx context.Context, count int) (*dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.rng.Loose(count, s.cfg.Dimension, s.dist)
	if err != nil {
		s.logger.LogGenerate(ctx, count, s.cfg.Dimension, err)
		return nil, fmt.Errorf("generate loose rows: %w", err)
	}

	packed, err := vector.Pack(rows, s.etype)
	if err != nil {
		return nil, fmt.Errorf("pack rows: %w", err)
	}

	query, err := s.rng.Query(s.cfg.Dimension, s.dist)
	if err != nil {
		return nil, fmt.Errorf("generate query: %w", err)
	}

	s.logger.LogGenerate(ctx, count, s.cfg.Dimension, nil)

	return &dataset{rows: rows, packed: packed, query: query}, nil
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

package report

import (
	"fmt"
	"io"

	"github.com/hupe1980/vecbench"
	"github.com/hupe1980/vecbench/codec"
)

// JSONL emits one JSON object per line for machine consumption: a header
// line carrying the run metadata, then every record in arrival order.
// Write errors stick and surface from Finish. Not safe for concurrent use.
type JSONL struct {
	w     io.Writer
	info  vecbench.RunInfo
	codec codec.Codec

	headerWritten bool
	err           error
}

// JSONLOption configures the JSONL sink.
type JSONLOption func(*JSONL)

// WithCodec overrides the codec used to encode lines.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) JSONLOption {
	return func(j *JSONL) {
		if c == nil {
			c = codec.Default
		}
		j.codec = c
	}
}

// NewJSONL creates a JSONL sink writing to w.
func NewJSONL(w io.Writer, info vecbench.RunInfo, optFns ...JSONLOption) *JSONL {
	j := &JSONL{
		w:     w,
		info:  info,
		codec: codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(j)
		}
	}
	return j
}

// line is the envelope written per record. Exactly one of the payload
// fields is set, selected by Type.
type line struct {
	Type       string                     `json:"type"`
	Run        *vecbench.RunInfo          `json:"run,omitempty"`
	Metric     *vecbench.MetricRecord     `json:"metric,omitempty"`
	Compliance *vecbench.ComplianceRecord `json:"compliance,omitempty"`
}

// RecordMetric implements vecbench.Reporter.
func (j *JSONL) RecordMetric(m vecbench.MetricRecord) {
	j.ensureHeader()
	j.write(line{Type: "metric", Metric: &m})
}

// RecordCompliance implements vecbench.Reporter.
func (j *JSONL) RecordCompliance(r vecbench.ComplianceRecord) {
	j.ensureHeader()
	j.write(line{Type: "compliance", Compliance: &r})
}

// Finish flushes the header for empty runs and reports the first error
// encountered while writing.
func (j *JSONL) Finish() error {
	j.ensureHeader()
	return j.err
}

func (j *JSONL) ensureHeader() {
	if j.headerWritten {
		return
	}
	j.headerWritten = true
	j.write(line{Type: "run", Run: &j.info})
}

func (j *JSONL) write(l line) {
	if j.err != nil {
		return
	}

	data, err := j.codec.Marshal(l)
	if err != nil {
		j.err = fmt.Errorf("encode %s line: %w", l.Type, err)
		return
	}
	if _, err := j.w.Write(append(data, '\n')); err != nil {
		j.err = fmt.Errorf("write %s line: %w", l.Type, err)
	}
}

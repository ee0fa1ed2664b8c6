package vecbench

// OperationKind classifies what a MetricRecord measured.
type OperationKind string

const (
	// OpLatency labels wall-clock durations of a single measured region.
	OpLatency OperationKind = "latency"
	// OpThroughput labels operation rates derived from repeated regions.
	OpThroughput OperationKind = "throughput"
	// OpMemory labels byte footprints, resident or encoded.
	OpMemory OperationKind = "memory"
	// OpPrecision labels round-trip error magnitudes.
	OpPrecision OperationKind = "precision"
	// OpSchema labels schema-validation measurements. Structural findings
	// normally travel as ComplianceRecords instead.
	OpSchema OperationKind = "schema"
)

// Architecture labels for the two paths under comparison. The standard path
// re-converts loose data on every operation; the zero-copy path reuses one
// pre-built packed buffer.
const (
	ArchStandard = "standard"
	ArchZeroCopy = "zero-copy"
)

// MetricRecord is the result of one measured operation. Records with the
// same Kind and Name but different Architecture were produced from identical
// input data and are directly comparable.
type MetricRecord struct {
	Architecture string        `json:"architecture"`
	Kind         OperationKind `json:"kind"`
	Name         string        `json:"name"`
	Value        float64       `json:"value"`
	Unit         string        `json:"unit"`
}

// ComplianceRecord is the outcome of one structural or numeric check.
// Passed derives from a fixed threshold or schema contract, never from
// randomness; Detail carries the first violation or the measured delta.
type ComplianceRecord struct {
	CheckName string `json:"check_name"`
	Passed    bool   `json:"passed"`
	Detail    string `json:"detail,omitempty"`
}

// Reporter consumes the record stream produced by a benchmark run.
// Implement this interface to route results into a rendering sink.
// All presentation, including derived comparisons such as speedup and
// bloat ratio, belongs to the implementation; the suites only emit.
//
// Finish is called once after the run completes and flushes or renders
// the accumulated records.
type Reporter interface {
	// RecordMetric is called for each measured value.
	RecordMetric(record MetricRecord)

	// RecordCompliance is called for each structural or numeric check.
	RecordCompliance(record ComplianceRecord)

	// Finish flushes the sink. No records follow it.
	Finish() error
}

// NoopReporter is a no-op implementation of Reporter.
// Use this when results are not needed, e.g. in warmup or smoke runs.
type NoopReporter struct{}

func (NoopReporter) RecordMetric(MetricRecord)         {}
func (NoopReporter) RecordCompliance(ComplianceRecord) {}
func (NoopReporter) Finish() error                     { return nil }

// Recorder is an in-memory Reporter that retains records in arrival order.
// Useful for tests and for embedders that post-process results themselves.
// Not safe for concurrent use.
type Recorder struct {
	Metrics    []MetricRecord
	Compliance []ComplianceRecord

	finished bool
}

// RecordMetric implements Reporter.
func (r *Recorder) RecordMetric(record MetricRecord) {
	r.Metrics = append(r.Metrics, record)
}

// RecordCompliance implements Reporter.
func (r *Recorder) RecordCompliance(record ComplianceRecord) {
	r.Compliance = append(r.Compliance, record)
}

// Finish implements Reporter.
func (r *Recorder) Finish() error {
	r.finished = true
	return nil
}

// Finished reports whether Finish has been called.
func (r *Recorder) Finished() bool {
	return r.finished
}

// MetricsFor returns the retained metrics matching an architecture and kind,
// in arrival order.
func (r *Recorder) MetricsFor(arch string, kind OperationKind) []MetricRecord {
	var out []MetricRecord
	for _, m := range r.Metrics {
		if m.Architecture == arch && m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// MetricNamed returns the first retained metric with the given architecture
// and name, and whether one exists.
func (r *Recorder) MetricNamed(arch, name string) (MetricRecord, bool) {
	for _, m := range r.Metrics {
		if m.Architecture == arch && m.Name == name {
			return m, true
		}
	}
	return MetricRecord{}, false
}

// Package vecbench quantifies what loose, boxed vector data costs compared
// to a packed numeric buffer holding the same values.
//
// Two architectures run the identical workload:
//
//   - STANDARD: vectors live as []any rows of boxed scalars and are
//     converted to a packed buffer on every operation, the way a handler
//     re-decodes its input on every request.
//   - ZERO-COPY: the packed buffer is built once at setup and every
//     operation scans it directly.
//
// The similarity kernel, the query and the data are shared, so any delta
// between the two arms is the price of the representation.
//
// # Quick Start
//
//	cfg := vecbench.DefaultConfig()
//	rec := &vecbench.Recorder{}
//
//	suite, err := vecbench.New(cfg, vecbench.WithReporter(rec))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := suite.RunAll(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
//	for _, m := range rec.Metrics {
//		fmt.Println(m.Architecture, m.Kind, m.Name, m.Value, m.Unit)
//	}
//
// # Suites
//
//   - Latency (RunLatency): one timed scan per arm.
//   - Throughput (RunThroughput): N timed scans per arm, ops/s derived.
//   - Memory (RunMemory): resident and encoded footprints per arm.
//   - Compliance (RunCompliance): schema contract checks and narrowing
//     round-trip audits.
//
// # Reporting
//
// Suites emit MetricRecord and ComplianceRecord values through the Reporter
// interface and never render anything themselves. The report package ships a
// styled console sink and a JSONL sink; Recorder retains records in memory
// for tests and embedders.
package vecbench

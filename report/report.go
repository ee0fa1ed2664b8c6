// Package report ships the reporting sinks: a styled console renderer and a
// line-delimited JSON emitter. Both implement vecbench.Reporter; the
// measurement core itself never renders. Derived comparisons such as speedup
// and bloat ratio are computed here from the received records.
package report

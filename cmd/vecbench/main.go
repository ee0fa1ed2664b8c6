// Package main provides the vecbench CLI.
//
// Usage:
//
//	vecbench [flags] <suite>
//
// Suites:
//
//	latency     - single-scan wall clock per architecture
//	throughput  - repeated scans, ops/s per architecture
//	memory      - resident and encoded footprints per architecture
//	compliance  - schema contract and precision round-trip checks
//	all         - every suite in order
//
// Each suite runs with compiled-in defaults and needs no arguments; flags
// and an optional YAML profile adjust the recognized options.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/vecbench/cmd/vecbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

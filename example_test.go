package vecbench_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/vecbench"
)

// Example_memoryFootprint sizes both representations of a small seeded
// dataset and prints the resident footprints. The loose form carries a
// boxed scalar per element, the packed form four bytes per element.
func Example_memoryFootprint() {
	cfg := vecbench.Config{
		VectorCount:  4,
		Dimension:    8,
		Iterations:   1,
		ElementWidth: 4,
		Seed:         1,
		Distribution: "uniform",
	}

	rec := &vecbench.Recorder{}
	suite, err := vecbench.New(cfg, vecbench.WithReporter(rec))
	if err != nil {
		log.Fatal(err)
	}
	if err := suite.RunMemory(context.Background()); err != nil {
		log.Fatal(err)
	}

	for _, m := range rec.Metrics {
		if m.Name == "resident" {
			fmt.Printf("%s: %.0f %s\n", m.Architecture, m.Value, m.Unit)
		}
	}
	// Output:
	// standard: 888 bytes
	// zero-copy: 128 bytes
}

// Example_compliance runs the structural and precision checks and prints
// each finding.
func Example_compliance() {
	cfg := vecbench.Config{
		VectorCount:  4,
		Dimension:    8,
		Iterations:   1,
		ElementWidth: 4,
		Seed:         1,
		Distribution: "uniform",
	}

	rec := &vecbench.Recorder{}
	suite, err := vecbench.New(cfg, vecbench.WithReporter(rec))
	if err != nil {
		log.Fatal(err)
	}
	if err := suite.RunCompliance(context.Background()); err != nil {
		log.Fatal(err)
	}

	for _, c := range rec.Compliance {
		fmt.Printf("%s passed=%v\n", c.CheckName, c.Passed)
	}
	// Output:
	// schema/well-formed passed=true
	// schema/short-vector passed=false
	// schema/missing-id passed=false
	// schema/string-element passed=false
	// precision/roundtrip-float32 passed=true
	// precision/roundtrip-float16 passed=true
}

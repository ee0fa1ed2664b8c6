package vecbench

import (
	"context"
	"fmt"

	"github.com/hupe1980/vecbench/audit"
	"github.com/hupe1980/vecbench/schema"
	"github.com/hupe1980/vecbench/vector"
)

// auditProbe is the canonical value pushed through the narrowing round trip.
// Its float32 image is 0.12345679104328155, within 1e-7 of the original.
const auditProbe = 0.123456789123456789

// RunCompliance validates structural and numeric contracts. The schema phase
// runs a well-formed upsert record and three adversarial variants through
// the dimension-parameterized contract; every check executes regardless of
// earlier findings. The precision phase audits the canonical probe value at
// both packed element widths.
func (s *Suite) RunCompliance(ctx context.Context) error {
	log := s.logger.WithSuite("compliance")

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("compliance: %w", err)
	}

	contract, err := schema.VectorUpsert(s.cfg.Dimension)
	if err != nil {
		return fmt.Errorf("compliance: build upsert contract: %w", err)
	}

	wellFormed := upsertSample(s.cfg.Dimension)

	shortVector := upsertSample(s.cfg.Dimension)
	shortVector["vector"] = shortVector["vector"].([]any)[:s.cfg.Dimension-1]

	missingID := upsertSample(s.cfg.Dimension)
	delete(missingID, "id")

	stringElement := upsertSample(s.cfg.Dimension)
	stringElement["vector"].([]any)[0] = "0.0"

	checks := []struct {
		name   string
		record map[string]any
	}{
		{"schema/well-formed", wellFormed},
		{"schema/short-vector", shortVector},
		{"schema/missing-id", missingID},
		{"schema/string-element", stringElement},
	}

	for _, check := range checks {
		res := contract.Validate(check.record)
		log.LogCheck(ctx, check.name, res.Passed, res.Violation)
		s.reporter.RecordCompliance(ComplianceRecord{
			CheckName: check.name,
			Passed:    res.Passed,
			Detail:    res.Violation,
		})
	}

	for _, etype := range []vector.ElementType{vector.Float32, vector.Float16} {
		res := audit.RoundTrip(auditProbe, etype)

		s.reporter.RecordMetric(MetricRecord{
			Architecture: ArchZeroCopy,
			Kind:         OpPrecision,
			Name:         "roundtrip/" + etype.String(),
			Value:        res.AbsError,
			Unit:         "abs-error",
		})

		name := "precision/roundtrip-" + etype.String()
		detail := fmt.Sprintf("stored %.17g, abs error %.3g, threshold %g",
			res.Stored, res.AbsError, res.Threshold)
		log.LogCheck(ctx, name, res.Passed(), detail)
		s.reporter.RecordCompliance(ComplianceRecord{
			CheckName: name,
			Passed:    res.Passed(),
			Detail:    detail,
		})
	}

	return nil
}

// upsertSample builds a well-formed upsert record with a dim-length vector.
func upsertSample(dim int) map[string]any {
	vec := make([]any, dim)
	for i := range vec {
		vec[i] = float64(i) / float64(dim)
	}

	return map[string]any{
		"id":      "vec-0001",
		"vector":  vec,
		"payload": map[string]any{"source": "synthetic"},
	}
}

// Package schema enforces the ingest contract for vector upsert records.
//
// A contract is compiled once from a JSON Schema document and then applied
// to individual records. Validation is fail-closed: the first violation
// rejects the record, and the violation text is carried back to the caller
// verbatim so reports can surface it without re-checking.
package schema

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/hupe1980/vecbench/codec"
	"github.com/hupe1980/vecbench/vector"
)

// Contract is a compiled validation contract for a fixed vector dimension.
type Contract struct {
	dim      int
	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved
}

// Result is the outcome of validating a single record. When Passed is
// false, Violation holds the first diagnostic reported by the validator.
type Result struct {
	Passed    bool
	Violation string
}

// VectorUpsert builds the contract for upsert records carrying vectors of
// exactly dim elements: a required string id, a required numeric vector
// whose length must equal dim, and an optional payload object.
func VectorUpsert(dim int) (*Contract, error) {
	if dim <= 0 {
		return nil, &vector.ErrInvalidDimension{Dimension: dim}
	}

	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {Type: "string"},
			"vector": {
				Type:     "array",
				Items:    &jsonschema.Schema{Type: "number"},
				MinItems: intp(dim),
				MaxItems: intp(dim),
			},
			"payload": {Type: "object"},
		},
		Required: []string{"id", "vector"},
	}

	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("schema: compile vector upsert contract: %w", err)
	}

	return &Contract{dim: dim, schema: s, resolved: resolved}, nil
}

// Dim returns the vector dimension the contract was compiled for.
func (c *Contract) Dim() int {
	return c.dim
}

// Schema returns the uncompiled schema document backing the contract.
func (c *Contract) Schema() *jsonschema.Schema {
	return c.schema
}

// Validate checks one record against the contract. The record is
// normalized through the wire codec first, so validation sees exactly the
// value an ingestion boundary would see after decoding.
func (c *Contract) Validate(record map[string]any) Result {
	inst, err := normalize(record)
	if err != nil {
		return Result{Violation: err.Error()}
	}
	if err := c.resolved.Validate(inst); err != nil {
		return Result{Violation: err.Error()}
	}
	return Result{Passed: true}
}

// ValidateBytes checks a raw encoded record against the contract.
func (c *Contract) ValidateBytes(data []byte) Result {
	var inst any
	if err := codec.Default.Unmarshal(data, &inst); err != nil {
		return Result{Violation: err.Error()}
	}
	if err := c.resolved.Validate(inst); err != nil {
		return Result{Violation: err.Error()}
	}
	return Result{Passed: true}
}

func normalize(record map[string]any) (any, error) {
	b, err := codec.Default.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("schema: encode record: %w", err)
	}
	var inst any
	if err := codec.Default.Unmarshal(b, &inst); err != nil {
		return nil, fmt.Errorf("schema: decode record: %w", err)
	}
	return inst, nil
}

func intp(n int) *int {
	return &n
}

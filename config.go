package vecbench

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/hupe1980/vecbench/gen"
	"github.com/hupe1980/vecbench/vector"
)

// Config holds the recognized benchmark options. All fields have compiled-in
// defaults; flags and YAML profiles only adjust them.
type Config struct {
	// VectorCount is the number of loose rows to synthesize.
	VectorCount int `yaml:"vector_count" json:"vector_count"`

	// Dimension is the element count of every row and of the query.
	Dimension int `yaml:"dimension" json:"dimension"`

	// Iterations is the repeat count used by the throughput suite.
	Iterations int `yaml:"iterations" json:"iterations"`

	// ElementWidth is the packed element width in bytes: 4 (float32)
	// or 2 (float16).
	ElementWidth int `yaml:"element_width" json:"element_width"`

	// Seed seeds the generator. Zero draws a time-derived seed, so two
	// runs only share data when an explicit seed is set.
	Seed int64 `yaml:"seed" json:"seed"`

	// Distribution selects the sampling distribution: uniform, symmetric
	// or normal.
	Distribution string `yaml:"distribution" json:"distribution"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		VectorCount:  10000,
		Dimension:    1536,
		Iterations:   50,
		ElementWidth: 4,
		Seed:         0,
		Distribution: "uniform",
	}
}

// Validate checks every field against its recognized range. All violations
// wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.VectorCount <= 0 {
		return fmt.Errorf("%w: vector count must be positive, got %d", ErrInvalidConfig, c.VectorCount)
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("%w: dimension must be positive, got %d", ErrInvalidConfig, c.Dimension)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if _, err := vector.ElementTypeForWidth(c.ElementWidth); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := gen.ParseDistribution(c.Distribution); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ElementType returns the packed element type selected by ElementWidth.
func (c Config) ElementType() (vector.ElementType, error) {
	return vector.ElementTypeForWidth(c.ElementWidth)
}

// DistributionKind returns the parsed sampling distribution.
func (c Config) DistributionKind() (gen.Distribution, error) {
	return gen.ParseDistribution(c.Distribution)
}

// LoadProfile reads a YAML profile and overlays it on the defaults. Keys
// absent from the profile keep their default values; unrecognized keys are
// rejected.
func LoadProfile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read profile: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("%w: profile %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

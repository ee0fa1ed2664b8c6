package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
	"github.com/hupe1980/vecbench/report"
)

var (
	// Global flags
	vectorCount  int
	dimension    int
	iterations   int
	elementWidth int
	seed         int64
	distribution string
	profilePath  string
	format       string
	outputPath   string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vecbench",
	Short: "Benchmark loose vs packed vector representations",
	Long: `vecbench - quantify what loose, boxed vector data costs.

Every suite runs the same workload on two architectures: STANDARD converts
the loose rows to a packed buffer on every operation, ZERO-COPY scans a
buffer packed once at setup. The kernel, the query and the data are shared,
so the reported delta is the price of the representation.

Examples:
  # Single-scan latency with the compiled-in defaults
  vecbench latency

  # Faster iteration loop over 5000 vectors of 768 dims
  vecbench throughput --dim 768

  # Half-width packed elements, reproducible data, machine-readable output
  vecbench all --element-width 2 --seed 42 --format jsonl -o run.jsonl

  # Options from a YAML profile, flags still win
  vecbench memory --profile bench.yaml --vectors 20000
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := vecbench.DefaultConfig()

	rootCmd.PersistentFlags().IntVar(&vectorCount, "vectors", defaults.VectorCount, "number of loose rows to synthesize")
	rootCmd.PersistentFlags().IntVar(&dimension, "dim", defaults.Dimension, "elements per row and per query")
	rootCmd.PersistentFlags().IntVar(&iterations, "iterations", defaults.Iterations, "repeat count for the throughput suite")
	rootCmd.PersistentFlags().IntVar(&elementWidth, "element-width", defaults.ElementWidth, "packed element width in bytes (4 or 2)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", defaults.Seed, "generator seed (0 = time-derived)")
	rootCmd.PersistentFlags().StringVar(&distribution, "distribution", defaults.Distribution, "sampling distribution (uniform, symmetric, normal)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML profile with recognized options")
	rootCmd.PersistentFlags().StringVar(&format, "format", "console", "output format (console, jsonl)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// configForRun resolves the effective configuration: compiled-in defaults,
// then the profile if given, then explicitly set flags on top.
func configForRun(defaultVectors int) (vecbench.Config, error) {
	cfg := vecbench.DefaultConfig()
	cfg.VectorCount = defaultVectors

	if profilePath != "" {
		loaded, err := vecbench.LoadProfile(profilePath)
		if err != nil {
			return vecbench.Config{}, err
		}
		cfg = loaded
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("vectors") {
		cfg.VectorCount = vectorCount
	}
	if flags.Changed("dim") {
		cfg.Dimension = dimension
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("element-width") {
		cfg.ElementWidth = elementWidth
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("distribution") {
		cfg.Distribution = distribution
	}

	if err := cfg.Validate(); err != nil {
		return vecbench.Config{}, err
	}
	return cfg, nil
}

// runSuite wires config, reporter and logger, runs one suite body and
// flushes the sink.
func runSuite(ctx context.Context, defaultVectors int, run func(context.Context, *vecbench.Suite) error) error {
	cfg, err := configForRun(defaultVectors)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	info := vecbench.NewRunInfo(cfg)

	var reporter vecbench.Reporter
	switch format {
	case "console":
		reporter = report.NewConsole(w, info)
	case "jsonl":
		reporter = report.NewJSONL(w, info)
	default:
		return fmt.Errorf("unknown format %q: supported formats are console and jsonl", format)
	}

	logger := vecbench.NoopLogger()
	if verbose {
		logger = vecbench.NewTextLogger(slog.LevelDebug)
	}

	suite, err := vecbench.New(cfg,
		vecbench.WithReporter(reporter),
		vecbench.WithLogger(logger),
		vecbench.WithRunInfo(info),
	)
	if err != nil {
		return err
	}

	if err := run(ctx, suite); err != nil {
		return err
	}
	return reporter.Finish()
}

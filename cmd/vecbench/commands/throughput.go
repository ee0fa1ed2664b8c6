package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
)

var throughputCmd = &cobra.Command{
	Use:   "throughput",
	Short: "Repeat the scan and derive ops/s per architecture",
	Long: `Repeats the dataset scan --iterations times on each architecture with one
untimed warmup repeat, then derives operations per second from the summed
wall clock. Defaults to 5000 vectors for a faster iteration loop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd.Context(), 5000, func(ctx context.Context, s *vecbench.Suite) error {
			return s.RunThroughput(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(throughputCmd)
}

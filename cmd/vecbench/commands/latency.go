package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
)

var latencyCmd = &cobra.Command{
	Use:   "latency",
	Short: "Time a single full scan per architecture",
	Long: `Times one dataset scan on each architecture: the standard arm pays the
loose-to-packed conversion inside the timed region, the zero-copy arm scans
the pre-built buffer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd.Context(), 10000, func(ctx context.Context, s *vecbench.Suite) error {
			return s.RunLatency(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(latencyCmd)
}

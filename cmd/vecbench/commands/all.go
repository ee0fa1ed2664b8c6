package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every suite in order",
	Long:  `Runs latency, throughput, memory and compliance over one configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd.Context(), 10000, func(ctx context.Context, s *vecbench.Suite) error {
			return s.RunAll(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Size resident and encoded footprints per architecture",
	Long: `Sizes both representations of the same dataset: boxed-object resident
footprint vs packed bytes, plus the wire footprint of each form encoded as
JSON, MessagePack or raw element bytes, with and without block compression.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd.Context(), 10000, func(ctx context.Context, s *vecbench.Suite) error {
			return s.RunMemory(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(memoryCmd)
}

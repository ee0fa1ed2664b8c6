package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench"
)

var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Run schema contract and precision round-trip checks",
	Long: `Validates a well-formed upsert record and adversarial variants against the
dimension-parameterized schema contract, then audits the canonical probe
value through the float32 and float16 round trips. Findings are reported;
a failing check never aborts the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd.Context(), 10000, func(ctx context.Context, s *vecbench.Suite) error {
			return s.RunCompliance(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(complianceCmd)
}

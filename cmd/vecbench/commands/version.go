package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecbench/kernel"
)

// version is set at build time via -ldflags "-X ...commands.version=v0.2.0".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and host information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vecbench %s (%s, %s)\n", version, kernel.HostISA(), runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

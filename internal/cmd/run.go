package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfncore/buddy/internal/bazel"
)

var runCmd = &cobra.Command{
	Use:   "run [targets...]",
	Short: "Run a binary or example of the local package",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeBazel(bazel.ModeRun, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

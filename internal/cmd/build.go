package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfncore/buddy/internal/bazel"
)

var buildCmd = &cobra.Command{
	Use:   "build [targets...]",
	Short: "Compile the current package",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invokeBazel(bazel.ModeBuild, args)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

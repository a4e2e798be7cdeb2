package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfncore/buddy/internal/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new buddy package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scaffold.CreatePackage(args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

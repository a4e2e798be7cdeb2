// Package cmd provides the CLI commands for the buddy tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sfncore/buddy/internal/bazel"
	"github.com/sfncore/buddy/internal/config"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

// bazelBin and cfg are resolved once in the root PersistentPreRunE,
// before any subcommand logic runs, and handed to the operations as
// explicit parameters.
var (
	bazelBin string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "buddy",
	Short: "Buddy - a cargo-style front-end for Bazel C++ packages",
	Long: `Buddy scaffolds Bazel C++ packages and delegates building and running
them to Bazel, with cargo-flavored defaults for output paths and
target names.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bin, err := bazel.Find()
		if err != nil {
			return err
		}
		bazelBin = bin

		c, err := config.Load(config.DefaultFile)
		if err != nil {
			return err
		}
		cfg = c
		fmt.Print(cfg)
		return nil
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return exitCode(rootCmd.Execute())
}

// exitCode maps an error from command execution to a process exit
// code. SilentExit passes its code through without printing; anything
// else is reported on stderr.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *SilentExit
	if errors.As(err, &se) {
		return se.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// invokeBazel runs Bazel in the given mode and converts a non-zero
// child exit into a silent exit with the same code. Bazel has already
// written its own diagnostics by then.
func invokeBazel(mode bazel.Mode, targets []string) error {
	err := bazel.Invoke(bazelBin, mode, targets, cfg)
	var ee *bazel.ExitError
	if errors.As(err, &ee) {
		return NewSilentExit(ee.Code)
	}
	return err
}

// buddy is a cargo-style front-end for Bazel C++ packages.
package main

import (
	"os"

	"github.com/sfncore/buddy/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

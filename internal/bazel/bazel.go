// Package bazel locates the Bazel binary and drives build and run
// invocations on behalf of buddy.
package bazel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sfncore/buddy/internal/config"
	"github.com/sfncore/buddy/internal/style"
)

// Mode selects the Bazel subcommand to invoke.
type Mode string

const (
	ModeBuild Mode = "build"
	ModeRun   Mode = "run"
)

// infoPrefix is the marker Bazel puts on informational stderr lines.
const infoPrefix = "INFO: "

// Find locates the Bazel binary on PATH. Its absence is fatal before
// any subcommand logic runs.
func Find() (string, error) {
	bin, err := exec.LookPath("bazel")
	if err != nil {
		return "", fmt.Errorf("bazel binary not found, see https://bazel.build/install: %w", err)
	}
	return bin, nil
}

// Args builds the argument vector for one invocation. The output base
// and symlink prefix keep Bazel's artifacts under target/ the way
// cargo does. With no explicit targets, build defaults to the whole
// src tree and run to the binary named by the descriptor.
func Args(mode Mode, extra []string, cfg config.Config) []string {
	args := []string{"--output_base=target/build", string(mode), "--symlink_prefix=target/"}
	if len(extra) > 0 {
		return append(args, extra...)
	}
	if mode == ModeRun {
		return append(args, "//src:"+cfg.Package.Name)
	}
	return append(args, "//src/...")
}

// ExitError reports a Bazel invocation that ran to completion but
// exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("bazel exited with code %d", e.Code)
}

// Invoke spawns Bazel and blocks until it exits. Bazel's stdout is
// inherited; its stderr is streamed line-by-line to our stdout in
// arrival order, with INFO lines recolored. A bazel-out directory left
// behind despite the custom output base is removed afterwards.
//
// A non-zero child exit comes back as an *ExitError so the dispatcher
// can propagate the code; failure to spawn at all is an ordinary
// error.
func Invoke(bin string, mode Mode, extra []string, cfg config.Config) error {
	cmd := exec.Command(bin, Args(mode, extra, cfg)...)
	cmd.Stdout = os.Stdout

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("piping bazel stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning %s: %w", bin, err)
	}

	streamDiagnostics(stderr, os.Stdout)

	waitErr := cmd.Wait()

	// Bazel still drops a bazel-out tree even with the custom output
	// base. Get rid of it.
	if _, err := os.Stat("bazel-out"); err == nil {
		if err := os.RemoveAll("bazel-out"); err != nil {
			return fmt.Errorf("removing bazel-out: %w", err)
		}
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("waiting on bazel: %w", waitErr)
	}
	return nil
}

// streamDiagnostics forwards the diagnostic stream to w in arrival
// order, blocking until the stream closes. Lines have no length cap:
// a reader that stopped short would leave the child blocked on a full
// pipe with nobody draining it.
func streamDiagnostics(r io.Reader, w io.Writer) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fmt.Fprintln(w, formatLine(line))
		}
		if err != nil {
			return
		}
	}
}

// formatLine recolors Bazel's INFO prefix; every other line comes back
// byte-for-byte.
func formatLine(line string) string {
	if !strings.HasPrefix(line, infoPrefix) {
		return line
	}
	return style.Info.Render("INFO:") + " " + strings.TrimPrefix(line, infoPrefix)
}

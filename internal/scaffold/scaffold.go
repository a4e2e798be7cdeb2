// Package scaffold writes the initial skeleton for a new buddy package.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sfncore/buddy/internal/style"
)

// manifestTemplate is the generated Buddy.toml. Its version and
// edition are fixed template values, independent of the loader
// defaults applied when no descriptor exists.
const manifestTemplate = `[package]
name = "%s"
version = "0.1.0"
edition = "2023"

[dependencies]`

const buildTemplate = `load("@rules_cc//cc:defs.bzl", "cc_binary")

cc_binary(
    name = "%s",
    srcs = ["main.cc"],
)`

const mainTemplate = `#include <ctime>
#include <string>
#include <iostream>

std::string get_greet(const std::string& who) {
  return "Hello " + who;
}

void print_localtime() {
  std::time_t result = std::time(nullptr);
  std::cout << std::asctime(std::localtime(&result));
}

int main(int argc, char** argv) {
  std::string who = "world";
  if (argc > 1) {
    who = argv[1];
  }
  std::cout << get_greet(who) << std::endl;
  print_localtime();
  return 0;
}`

// CreatePackage writes a fresh package skeleton rooted at name: an
// empty WORKSPACE marker, a Buddy.toml manifest, and a src/ directory
// holding a BUILD file declaring one cc_binary target plus its
// main.cc. The name doubles as the directory path and the embedded
// package identifier.
//
// An existing destination is reported to the user and left untouched;
// that is not treated as a failure of the invocation.
func CreatePackage(name string) error {
	if _, err := os.Stat(name); err == nil {
		fmt.Printf("%s destination `%s` already exists\n", style.Error.Render("error:"), name)
		return nil
	}

	if err := os.Mkdir(name, 0755); err != nil {
		return fmt.Errorf("creating package directory: %w", err)
	}
	srcDir := filepath.Join(name, "src")
	if err := os.Mkdir(srcDir, 0755); err != nil {
		return fmt.Errorf("creating src directory: %w", err)
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(name, "WORKSPACE"), ""},
		{filepath.Join(name, "Buddy.toml"), fmt.Sprintf(manifestTemplate, name)},
		{filepath.Join(srcDir, "BUILD"), fmt.Sprintf(buildTemplate, name)},
		{filepath.Join(srcDir, "main.cc"), mainTemplate},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}

	fmt.Printf("    %s binary (application) `%s` package\n", style.Created.Render("Created"), name)
	return nil
}

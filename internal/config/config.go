// Package config loads the Buddy.toml project descriptor.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the descriptor filename buddy looks for in the
// working directory.
const DefaultFile = "Buddy.toml"

// Package identifies the project being built.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// Dependency is a single entry in the [dependencies] table.
type Dependency struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Config is the parsed Buddy.toml descriptor. It is loaded once per
// invocation and never written back.
type Config struct {
	Package      Package               `toml:"package"`
	Dependencies map[string]Dependency `toml:"dependencies"`
}

// Default returns the descriptor used when no Buddy.toml exists.
func Default() Config {
	return Config{
		Package: Package{
			Name:    "default",
			Version: "0.1.0",
			Edition: "2021",
		},
		Dependencies: map[string]Dependency{},
	}
}

// Load reads the descriptor at path. A missing file is not an error:
// the built-in defaults apply. A file that exists but does not parse
// is fatal to the invocation.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Dependencies == nil {
		cfg.Dependencies = map[string]Dependency{}
	}
	return cfg, nil
}

// String renders the descriptor the way it is dumped to stdout before
// a subcommand runs. Dependencies print in name order.
func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[package]\nname = %q\nversion = %q\nedition = %q\n",
		c.Package.Name, c.Package.Version, c.Package.Edition)
	b.WriteString("\n[dependencies]\n")

	names := make([]string, 0, len(c.Dependencies))
	for name := range c.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := c.Dependencies[name]
		fmt.Fprintf(&b, "%s = { name = %q, version = %q }\n", name, d.Name, d.Version)
	}
	return b.String()
}

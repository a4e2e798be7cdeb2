package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadParsesDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	content := `[package]
name = "demo"
version = "1.2.3"
edition = "2023"

[dependencies]
fmtlib = { name = "fmt", version = "10.1.0" }
abseil = { name = "abseil-cpp", version = "20240116.2" }
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Package.Name != "demo" {
		t.Errorf("package name = %q, want demo", cfg.Package.Name)
	}
	if cfg.Package.Version != "1.2.3" {
		t.Errorf("package version = %q, want 1.2.3", cfg.Package.Version)
	}
	if cfg.Package.Edition != "2023" {
		t.Errorf("package edition = %q, want 2023", cfg.Package.Edition)
	}
	if len(cfg.Dependencies) != 2 {
		t.Fatalf("dependencies count = %d, want 2", len(cfg.Dependencies))
	}
	dep, ok := cfg.Dependencies["fmtlib"]
	if !ok {
		t.Fatal("fmtlib dependency missing")
	}
	if dep.Name != "fmt" || dep.Version != "10.1.0" {
		t.Errorf("fmtlib = %+v, want {fmt 10.1.0}", dep)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.Package.Name != "default" {
		t.Errorf("default name = %q, want default", cfg.Package.Name)
	}
	if cfg.Package.Version != "0.1.0" {
		t.Errorf("default version = %q, want 0.1.0", cfg.Package.Version)
	}
	if cfg.Package.Edition != "2021" {
		t.Errorf("default edition = %q, want 2021", cfg.Package.Edition)
	}
	if len(cfg.Dependencies) != 0 {
		t.Errorf("default dependencies count = %d, want 0", len(cfg.Dependencies))
	}
}

func TestLoadMalformedDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken table header", "[package\nname = \"x\""},
		{"dangling key", "[package]\nname ="},
		{"wrong value type", "[package]\nname = 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestStringRendersDescriptor(t *testing.T) {
	cfg := Default()
	cfg.Package.Name = "demo"
	cfg.Dependencies["zlib"] = Dependency{Name: "zlib", Version: "1.3"}
	cfg.Dependencies["abseil"] = Dependency{Name: "abseil-cpp", Version: "20240116.2"}

	got := cfg.String()
	if !strings.Contains(got, `name = "demo"`) {
		t.Errorf("rendered config missing package name:\n%s", got)
	}
	// Dependencies print in name order.
	abseil := strings.Index(got, "abseil")
	zlib := strings.Index(got, "zlib")
	if abseil == -1 || zlib == -1 || abseil > zlib {
		t.Errorf("dependencies not rendered in name order:\n%s", got)
	}
}

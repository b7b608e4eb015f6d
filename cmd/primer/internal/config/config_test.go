package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-primer/primer/cmd/primer/internal/userdir"
)

// useConfigDir points userdir at a temp directory for the duration of a test.
func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	userdir.SetConfigDir(dir)
	t.Cleanup(func() { userdir.SetConfigDir("") })
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	useConfigDir(t)

	cfg, err := LoadOptional()
	if err != nil {
		t.Fatalf("LoadOptional() unexpected error: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("LoadOptional() = %+v, want zero config for missing file", cfg)
	}
}

func TestLoadOptional_ParsesYAML(t *testing.T) {
	dir := useConfigDir(t)
	writeConfig(t, dir, "author: Ada Lovelace\nemail: ada@example.com\nlicense: apache-2.0\npython: python3.12\n")

	cfg, err := LoadOptional()
	if err != nil {
		t.Fatalf("LoadOptional() unexpected error: %v", err)
	}
	want := Config{Author: "Ada Lovelace", Email: "ada@example.com", License: "apache-2.0", Python: "python3.12"}
	if *cfg != want {
		t.Errorf("LoadOptional() = %+v, want %+v", cfg, want)
	}
}

func TestLoadOptional_RejectsMalformedYAML(t *testing.T) {
	dir := useConfigDir(t)
	writeConfig(t, dir, "author: [unclosed\n")

	if _, err := LoadOptional(); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestResolve_BuiltinDefaults(t *testing.T) {
	useConfigDir(t)

	r, err := Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if r.License != "mit" {
		t.Errorf("License = %q, want default mit", r.License)
	}
	if r.Python != "python3" {
		t.Errorf("Python = %q, want default python3", r.Python)
	}
	if r.Description != "A Python package" {
		t.Errorf("Description = %q, want built-in default", r.Description)
	}
	if r.Author != "" || r.Email != "" {
		t.Errorf("Author/Email = %q/%q, want empty", r.Author, r.Email)
	}
}

func TestResolve_FileFillsGaps(t *testing.T) {
	dir := useConfigDir(t)
	writeConfig(t, dir, "author: Ada Lovelace\nlicense: bsd-3-clause\n")

	r, err := Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if r.Author != "Ada Lovelace" {
		t.Errorf("Author = %q, want file value", r.Author)
	}
	if r.License != "bsd-3-clause" {
		t.Errorf("License = %q, want file value", r.License)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	dir := useConfigDir(t)
	writeConfig(t, dir, "author: Ada Lovelace\nlicense: bsd-3-clause\npython: python3.11\n")

	r, err := Resolve(Overrides{Author: "Grace Hopper", License: "MIT", Python: "python3.13"})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if r.Author != "Grace Hopper" {
		t.Errorf("Author = %q, want flag value", r.Author)
	}
	if r.License != "mit" {
		t.Errorf("License = %q, want lowercased flag value", r.License)
	}
	if r.Python != "python3.13" {
		t.Errorf("Python = %q, want flag value", r.Python)
	}
}

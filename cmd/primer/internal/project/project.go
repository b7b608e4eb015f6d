// Package project locates and inspects generated project trees.
package project

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Info describes a generated project as found on disk.
type Info struct {
	Root        string
	Name        string // from setup.cfg [metadata] name, empty if unknown
	PackageName string // top-level directory holding __init__.py
	HasTests    bool
	HasDocs     bool
	HasVenv     bool
}

// reserved directories that are never the Python package.
var nonPackageDirs = map[string]bool{
	"tests": true,
	"docs":  true,
	"venv":  true,
}

// FindRoot walks up from the current directory to find pyproject.toml.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRootFrom(dir)
}

func findRootFrom(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a generated project (no pyproject.toml found)")
		}
		dir = parent
	}
}

// Inspect reports which components of a generated project are present.
func Inspect(root string) (*Info, error) {
	info := &Info{Root: root}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read project directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case name == "tests":
			info.HasTests = true
		case name == "docs":
			info.HasDocs = true
		case name == "venv":
			info.HasVenv = true
		case !nonPackageDirs[name] && !strings.HasPrefix(name, "."):
			if _, err := os.Stat(filepath.Join(root, name, "__init__.py")); err == nil {
				info.PackageName = name
			}
		}
	}

	info.Name = metadataName(filepath.Join(root, "setup.cfg"))

	return info, nil
}

// metadataName extracts the "name = ..." value from setup.cfg, if readable.
func metadataName(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if value, ok := strings.CutPrefix(line, "name ="); ok {
			return strings.TrimSpace(value)
		}
		if value, ok := strings.CutPrefix(line, "name="); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-primer/primer/cmd/primer/internal/scaffold"
)

func scaffoldFixture(t *testing.T, tests, docs bool) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "my-project")
	err := scaffold.Create(dir, scaffold.Settings{
		ProjectName: "my-project",
		Author:      "Ada Lovelace",
		Description: "A demo package",
		License:     "mit",
		Year:        2026,
		Tests:       tests,
		Docs:        docs,
	})
	if err != nil {
		t.Fatalf("scaffold.Create failed: %v", err)
	}
	return dir
}

func TestFindRootFrom(t *testing.T) {
	root := scaffoldFixture(t, true, true)

	// From the root itself
	got, err := findRootFrom(root)
	if err != nil {
		t.Fatalf("findRootFrom(root) unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("findRootFrom(root) = %q, want %q", got, root)
	}

	// From a nested directory
	nested := filepath.Join(root, "tests")
	got, err = findRootFrom(nested)
	if err != nil {
		t.Fatalf("findRootFrom(nested) unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("findRootFrom(nested) = %q, want %q", got, root)
	}
}

func TestFindRootFrom_NotAProject(t *testing.T) {
	if _, err := findRootFrom(t.TempDir()); err == nil {
		t.Fatal("expected error outside a generated project, got nil")
	}
}

func TestInspect_FullProject(t *testing.T) {
	root := scaffoldFixture(t, true, true)
	// Simulate a provisioned environment without running python.
	if err := os.MkdirAll(filepath.Join(root, "venv", "bin"), 0o755); err != nil {
		t.Fatal(err)
	}

	info, err := Inspect(root)
	if err != nil {
		t.Fatalf("Inspect unexpected error: %v", err)
	}
	if info.Name != "my-project" {
		t.Errorf("Name = %q, want my-project", info.Name)
	}
	if info.PackageName != "my_project" {
		t.Errorf("PackageName = %q, want my_project", info.PackageName)
	}
	if !info.HasTests || !info.HasDocs || !info.HasVenv {
		t.Errorf("components = tests:%v docs:%v venv:%v, want all present",
			info.HasTests, info.HasDocs, info.HasVenv)
	}
}

func TestInspect_MinimalProject(t *testing.T) {
	root := scaffoldFixture(t, false, false)

	info, err := Inspect(root)
	if err != nil {
		t.Fatalf("Inspect unexpected error: %v", err)
	}
	if info.HasTests || info.HasDocs || info.HasVenv {
		t.Errorf("components = tests:%v docs:%v venv:%v, want all absent",
			info.HasTests, info.HasDocs, info.HasVenv)
	}
	if info.PackageName != "my_project" {
		t.Errorf("PackageName = %q, want my_project", info.PackageName)
	}
}

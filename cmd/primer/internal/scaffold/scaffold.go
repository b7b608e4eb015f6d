// Package scaffold writes the generated project tree.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-primer/primer/cmd/primer/internal/templates"
)

// Settings describes the project metadata used for scaffolding.
type Settings struct {
	ProjectName string
	Author      string
	Email       string
	Description string
	RepoPath    string // forge path for packaging metadata; derived when empty
	License     string // embedded license identifier, e.g. "mit"
	Year        int    // copyright year
	Tests       bool   // create tests/ with a pytest smoke test
	Docs        bool   // create docs/index.md
}

// projectFile maps an embedded template to its destination, relative to the
// project root. Destinations may reference the package name via %s.
type projectFile struct {
	templatePath string
	destName     string
	pkgDest      bool // destName is a format string taking the package name
}

var baseFiles = []projectFile{
	{"project/__init__.py.tmpl", "%s/__init__.py", true},
	{"project/setup.py.tmpl", "setup.py", false},
	{"project/pyproject.toml.tmpl", "pyproject.toml", false},
	{"project/setup.cfg.tmpl", "setup.cfg", false},
	{"project/README.md.tmpl", "README.md", false},
	{"project/gitignore.tmpl", ".gitignore", false},
	{"project/Makefile.tmpl", "Makefile", false},
}

var testFiles = []projectFile{
	{"project/tests_init.py.tmpl", "tests/__init__.py", false},
	{"project/test_package.py.tmpl", "tests/test_%s.py", true},
}

var docsFiles = []projectFile{
	{"project/docs_index.md.tmpl", "docs/index.md", false},
}

// Create creates the project directory at dir and populates it with the files
// selected by the settings. It fails before any write if dir already exists.
// If a write fails after the directory was created, the partial tree is
// removed and the original error returned.
func Create(dir string, s Settings) error {
	// Check if directory already exists
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Printf("Creating project: %s\n", s.ProjectName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := templates.NewTemplateData(templates.TemplateInput{
		ProjectName: s.ProjectName,
		Author:      s.Author,
		Email:       s.Email,
		Description: s.Description,
		RepoPath:    s.RepoPath,
		License:     s.License,
		Year:        s.Year,
	})

	files := filePlan(s)
	for _, f := range files {
		dest := f.destName
		if f.pkgDest {
			dest = fmt.Sprintf(f.destName, data.PackageName)
		}
		if err := writeTemplate(dir, f.templatePath, dest, data); err != nil {
			SafeRemoveAll(dir)
			return err
		}
		fmt.Printf("  Created %s\n", dest)
	}

	return nil
}

// filePlan returns the files to write for the given settings, in emission
// order.
func filePlan(s Settings) []projectFile {
	files := make([]projectFile, 0, len(baseFiles)+len(testFiles)+len(docsFiles)+1)
	files = append(files, baseFiles...)
	files = append(files, projectFile{"licenses/" + s.License + ".tmpl", "LICENSE", false})
	if s.Tests {
		files = append(files, testFiles...)
	}
	if s.Docs {
		files = append(files, docsFiles...)
	}
	return files
}

func writeTemplate(projectDir, templatePath, destName string, data *templates.TemplateData) error {
	content, err := templates.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	processed, err := templates.ProcessTemplate(string(content), data)
	if err != nil {
		return fmt.Errorf("failed to render template %s: %w", templatePath, err)
	}

	destPath := filepath.Join(projectDir, destName)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destName, err)
	}
	if err := os.WriteFile(destPath, []byte(processed), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destName, err)
	}

	return nil
}

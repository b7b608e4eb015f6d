package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/module"

	"github.com/go-primer/primer/cmd/primer/internal/config"
	"github.com/go-primer/primer/cmd/primer/internal/scaffold"
	"github.com/go-primer/primer/cmd/primer/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Scaffold a new Python project",
		Long: `Scaffold a new Python project in a new directory.

This command creates:
  - A new directory at the specified path
  - A package directory with __init__.py
  - setup.py, pyproject.toml, and setup.cfg packaging metadata
  - README.md, LICENSE, .gitignore, and a Makefile
  - tests/ with a pytest smoke test (unless --no-tests)
  - docs/index.md (unless --no-docs)
  - A virtual environment at ./venv (unless --no-venv)

The project name is derived from the directory basename. The Python
package name is the project name lowercased with hyphens replaced by
underscores.

Flags:
  --no-tests               Skip creating the tests directory
  --no-docs                Skip creating the docs directory
  --no-venv                Skip creating the virtual environment
  -a, --author NAME        Author name for project metadata
  -e, --email ADDR         Author email for project metadata
  -d, --description TEXT   Short description of the project
  --license ID             License template (mit, apache-2.0, bsd-3-clause)
  --repo PATH              Repository path for metadata, e.g. github.com/user/name
  --python BIN             Interpreter used for the virtual environment

Author, email, license, and python default from ~/.primer/config.yaml
when present.

Examples:
  primer new myproject
  primer new myproject --no-venv -a "Ada Lovelace" -e ada@example.com
  primer new ./projects/myproject --license apache-2.0`,
		Usage: "primer new <directory> [flags]",
		Run:   runNew,
	})
}

type newOptions struct {
	tests       bool
	docs        bool
	venv        bool
	author      string
	email       string
	description string
	license     string
	repo        string
	python      string
}

// runNew creates a new Python project. The first argument is the directory
// path to create (which may be relative or absolute). The project name is
// derived from the directory's basename.
func runNew(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: primer new <directory> [flags]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by primer; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)

	// Validate directory path before deriving anything from it
	if err := scaffold.ValidateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	if err := scaffold.ValidateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	opts := newOptions{tests: true, docs: true, venv: true}
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--no-tests":
			opts.tests = false
		case "--no-docs":
			opts.docs = false
		case "--no-venv":
			opts.venv = false
		case "-a", "--author":
			if i+1 < len(args) {
				opts.author = args[i+1]
				i++
			}
		case "-e", "--email":
			if i+1 < len(args) {
				opts.email = args[i+1]
				i++
			}
		case "-d", "--description":
			if i+1 < len(args) {
				opts.description = args[i+1]
				i++
			}
		case "--license":
			if i+1 < len(args) {
				opts.license = args[i+1]
				i++
			}
		case "--repo":
			if i+1 < len(args) {
				opts.repo = args[i+1]
				i++
			}
		case "--python":
			if i+1 < len(args) {
				opts.python = args[i+1]
				i++
			}
		}
	}

	cfg, err := config.Resolve(config.Overrides{
		Author:      opts.author,
		Email:       opts.email,
		Description: opts.description,
		License:     opts.license,
		Python:      opts.python,
	})
	if err != nil {
		return err
	}

	if !templates.HasLicense(cfg.License) {
		return fmt.Errorf("unknown license %q; run 'primer licenses' to list available templates", cfg.License)
	}
	if opts.repo != "" {
		if err := module.CheckPath(opts.repo); err != nil {
			return fmt.Errorf("invalid repository path %q: %w", opts.repo, err)
		}
	}

	settings := scaffold.Settings{
		ProjectName: projectName,
		Author:      cfg.Author,
		Email:       cfg.Email,
		Description: cfg.Description,
		RepoPath:    opts.repo,
		License:     cfg.License,
		Year:        time.Now().Year(),
		Tests:       opts.tests,
		Docs:        opts.docs,
	}

	if err := scaffold.Create(dir, settings); err != nil {
		return err
	}

	if opts.venv {
		if err := scaffold.CreateVenv(dir, cfg.Python); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("Project %s created successfully!\n\n", projectName)
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	if opts.venv {
		if runtime.GOOS == "windows" {
			fmt.Printf("  .\\venv\\Scripts\\activate\n")
		} else {
			fmt.Printf("  source venv/bin/activate\n")
		}
	}
	if opts.tests {
		fmt.Printf("  make test\n")
	}

	return nil
}

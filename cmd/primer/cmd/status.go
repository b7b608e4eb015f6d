package cmd

import (
	"fmt"

	"github.com/go-primer/primer/cmd/primer/internal/project"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project status",
		Long: `Show the current status of a generated project.

Walks up from the current directory to the project root (marked by
pyproject.toml) and reports which optional components are present.`,
		Usage: "primer status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := project.FindRoot()
	if err != nil {
		return err
	}

	info, err := project.Inspect(root)
	if err != nil {
		return err
	}

	name := info.Name
	if name == "" {
		name = "(unknown)"
	}

	fmt.Printf("Project: %s (package %s)\n", name, info.PackageName)
	fmt.Printf("Root:    %s\n", info.Root)
	fmt.Println()
	fmt.Println("Components:")

	components := []struct {
		label   string
		present bool
		hint    string
	}{
		{"tests", info.HasTests, "primer new --no-tests was used"},
		{"docs", info.HasDocs, "primer new --no-docs was used"},
		{"venv", info.HasVenv, "run: python3 -m venv venv"},
	}

	for _, c := range components {
		if c.present {
			fmt.Printf("  %-7s present\n", c.label+":")
		} else {
			fmt.Printf("  %-7s absent   (%s)\n", c.label+":", c.hint)
		}
	}

	return nil
}

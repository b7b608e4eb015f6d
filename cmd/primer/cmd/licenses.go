package cmd

import (
	"fmt"

	"github.com/go-primer/primer/cmd/primer/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "licenses",
		Short: "List available license templates",
		Long: `List the license templates that can be selected with
'primer new --license <id>'.`,
		Usage: "primer licenses",
		Run:   runLicenses,
	})
}

func runLicenses(args []string) error {
	ids, err := templates.LicenseIDs()
	if err != nil {
		return fmt.Errorf("failed to list license templates: %w", err)
	}

	fmt.Println("Available licenses:")
	for _, id := range ids {
		fmt.Printf("  %-14s %s\n", id, templates.LicenseName(id))
	}
	return nil
}

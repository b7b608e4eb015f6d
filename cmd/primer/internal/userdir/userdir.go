// Package userdir provides centralized config directory resolution for Primer.
//
// Priority order: --config-dir flag > PRIMER_CONFIG_DIR env > ~/.primer default.
package userdir

import (
	"fmt"
	"os"
	"path/filepath"
)

var global struct {
	configDir string
}

// SetConfigDir sets an override for the config directory.
// This is typically called when parsing the --config-dir flag.
func SetConfigDir(dir string) {
	global.configDir = dir
}

// Root returns the config root directory.
// Priority: --config-dir flag > PRIMER_CONFIG_DIR env > ~/.primer default.
func Root() (string, error) {
	if global.configDir != "" {
		return global.configDir, nil
	}

	if envDir := os.Getenv("PRIMER_CONFIG_DIR"); envDir != "" {
		return envDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".primer"), nil
}

// ConfigFile returns the path of the optional defaults file.
// Returns: <config_root>/config.yaml
func ConfigFile() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "config.yaml"), nil
}

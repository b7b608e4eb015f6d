package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-primer/primer/cmd/primer/internal/userdir"
)

// Config represents the optional per-user config.yaml defaults.
type Config struct {
	Author  string `yaml:"author,omitempty"`
	Email   string `yaml:"email,omitempty"`
	License string `yaml:"license,omitempty"`
	Python  string `yaml:"python,omitempty"`
}

// Overrides contains values supplied on the command line. Empty fields fall
// back to the config file, then to built-in defaults.
type Overrides struct {
	Author      string
	Email       string
	Description string
	License     string
	Python      string
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Author      string
	Email       string
	Description string
	License     string
	Python      string
}

// LoadOptional reads <config-dir>/config.yaml if present.
func LoadOptional() (*Config, error) {
	path, err := userdir.ConfigFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve loads config.yaml (if present) and resolves defaults under the
// given command-line overrides.
func Resolve(o Overrides) (*Resolved, error) {
	cfg, err := LoadOptional()
	if err != nil {
		return nil, err
	}

	author := firstNonEmpty(o.Author, cfg.Author)
	email := firstNonEmpty(o.Email, cfg.Email)
	description := firstNonEmpty(o.Description, "A Python package")
	license := firstNonEmpty(o.License, cfg.License, "mit")
	python := firstNonEmpty(o.Python, cfg.Python, "python3")

	return &Resolved{
		Author:      author,
		Email:       email,
		Description: description,
		License:     strings.ToLower(license),
		Python:      python,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

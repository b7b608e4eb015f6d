// Package templates provides embedded template files for project creation.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"unicode"
)

// all: is required so __init__.py.tmpl is included; plain directory
// patterns skip files whose names begin with an underscore.
//
//go:embed all:project licenses
var FS embed.FS

// TemplateInput holds the caller-provided values for template rendering.
type TemplateInput struct {
	ProjectName string
	Author      string
	Email       string
	Description string
	RepoPath    string
	License     string
	Year        int
}

// TemplateData contains the data for template substitution.
type TemplateData struct {
	ProjectName       string // e.g., "my-project"
	PackageName       string // e.g., "my_project"
	Title             string // e.g., "My-Project"
	Author            string
	Email             string
	Description       string
	RepoPath          string // e.g., "github.com/user/my-project"
	RepoURL           string // e.g., "https://github.com/user/my-project"
	License           string // e.g., "mit"
	LicenseName       string // e.g., "MIT License"
	LicenseTag        string // e.g., "MIT" (SPDX-style metadata value)
	LicenseClassifier string // e.g., "License :: OSI Approved :: MIT License"
	Year              int
	Version           string // initial package version
}

// license metadata keyed by the embedded template identifier.
var licenseInfo = map[string]struct {
	name       string
	tag        string
	classifier string
}{
	"mit": {
		name:       "MIT License",
		tag:        "MIT",
		classifier: "License :: OSI Approved :: MIT License",
	},
	"apache-2.0": {
		name:       "Apache License 2.0",
		tag:        "Apache-2.0",
		classifier: "License :: OSI Approved :: Apache Software License",
	},
	"bsd-3-clause": {
		name:       "BSD 3-Clause License",
		tag:        "BSD-3-Clause",
		classifier: "License :: OSI Approved :: BSD License",
	},
}

// NewTemplateData creates template data from the given input, deriving the
// package name, title, and repository URL automatically.
func NewTemplateData(in TemplateInput) *TemplateData {
	repoPath := in.RepoPath
	if repoPath == "" {
		repoPath = defaultRepoPath(in.Author, in.ProjectName)
	}

	info := licenseInfo[in.License]

	return &TemplateData{
		ProjectName:       in.ProjectName,
		PackageName:       PackageName(in.ProjectName),
		Title:             titleCase(in.ProjectName),
		Author:            in.Author,
		Email:             in.Email,
		Description:       in.Description,
		RepoPath:          repoPath,
		RepoURL:           "https://" + repoPath,
		License:           in.License,
		LicenseName:       info.name,
		LicenseTag:        info.tag,
		LicenseClassifier: info.classifier,
		Year:              in.Year,
		Version:           "0.1.0",
	}
}

// PackageName derives the Python package name from a project name:
// hyphens become underscores and the result is lowercased.
func PackageName(projectName string) string {
	return strings.ToLower(strings.ReplaceAll(projectName, "-", "_"))
}

// HasLicense reports whether id names an embedded license template.
func HasLicense(id string) bool {
	_, ok := licenseInfo[id]
	return ok
}

// LicenseIDs returns the embedded license identifiers, sorted.
func LicenseIDs() ([]string, error) {
	files, err := ListFiles("licenses")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, strings.TrimSuffix(filepath.Base(f), ".tmpl"))
	}
	sort.Strings(ids)
	return ids, nil
}

// LicenseName returns the human-readable name for a license identifier.
func LicenseName(id string) string {
	return licenseInfo[id].name
}

// titleCase uppercases the first letter of each word, where words are
// separated by any non-letter rune. "my-app" becomes "My-App".
func titleCase(name string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// defaultRepoPath builds a forge path for packaging metadata when the user
// did not pass --repo. The owner segment comes from the author name when one
// is available.
func defaultRepoPath(author, projectName string) string {
	owner := ownerSlug(author)
	if owner == "" {
		owner = "example"
	}
	return fmt.Sprintf("github.com/%s/%s", owner, projectName)
}

// ownerSlug reduces an author name to a path-safe lowercase segment.
func ownerSlug(author string) string {
	lower := strings.ToLower(strings.TrimSpace(author))
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteRune('-')
		default:
			// Skip other characters
		}
	}
	return strings.Trim(b.String(), "-")
}

// ProcessTemplate processes a template string with the given data.
func ProcessTemplate(content string, data *TemplateData) (string, error) {
	tmpl, err := template.New("").Parse(content)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ListFiles returns all files in the embedded filesystem under the given path.
func ListFiles(path string) ([]string, error) {
	var files []string

	err := fs.WalkDir(FS, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})

	return files, err
}

// ReadFile reads a file from the embedded filesystem.
func ReadFile(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

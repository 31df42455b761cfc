// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type OutputFormat string

const (
	OutputFormatHuman OutputFormat = "human"
	OutputFormatJSON  OutputFormat = "json"
)

type (
	// SchemaConfig describes one schema to audit: the schema file, the
	// ordered search roots holding its source definitions, and a display
	// name for the report. Root order is a priority list when the same
	// type name could appear in more than one root.
	SchemaConfig struct {
		SchemaFile  string
		SearchRoots []string
		DisplayName string
		SourceExt   string
	}

	// Options configures an audit run.
	Options struct {
		ProjectRoot  string
		Schemas      []SchemaConfig
		OutputFormat OutputFormat
		Logger       *log.Logger
	}
)

// Normalize fills defaults and makes all paths absolute, then validates.
func (o *Options) Normalize() error {
	if o.ProjectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		o.ProjectRoot = cwd
	}
	absRoot, err := filepath.Abs(o.ProjectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	o.ProjectRoot = absRoot

	if o.OutputFormat == "" {
		o.OutputFormat = OutputFormatHuman
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "docgap",
		})
	}

	for i := range o.Schemas {
		sc := &o.Schemas[i]

		if sc.SchemaFile != "" && !filepath.IsAbs(sc.SchemaFile) {
			sc.SchemaFile = filepath.Join(o.ProjectRoot, sc.SchemaFile)
		}

		if sc.DisplayName == "" {
			base := filepath.Base(sc.SchemaFile)
			sc.DisplayName = strings.TrimSuffix(base, filepath.Ext(base))
		}

		if sc.SourceExt == "" {
			sc.SourceExt = ".rs"
		}
		if !strings.HasPrefix(sc.SourceExt, ".") {
			sc.SourceExt = "." + sc.SourceExt
		}

		for j, root := range sc.SearchRoots {
			if !filepath.IsAbs(root) {
				sc.SearchRoots[j] = filepath.Join(o.ProjectRoot, root)
			}
		}
	}

	return o.Validate()
}

// Validate checks that the options describe a runnable audit.
func (o Options) Validate() error {
	if o.ProjectRoot == "" {
		return fmt.Errorf("project root is required")
	}
	info, err := os.Stat(o.ProjectRoot)
	if err != nil {
		return fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project root is not a directory: %s", o.ProjectRoot)
	}

	if len(o.Schemas) == 0 {
		return fmt.Errorf("at least one schema is required")
	}
	for _, sc := range o.Schemas {
		if sc.SchemaFile == "" {
			return fmt.Errorf("schema file is required")
		}
	}

	switch o.OutputFormat {
	case OutputFormatHuman, OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", o.OutputFormat)
	}
}

// existingRoots drops search roots that do not exist. Missing roots are
// not an error: schemas routinely share configs across subsystems that
// are not all checked out.
func existingRoots(roots []string) []string {
	var existing []string
	for _, root := range roots {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			existing = append(existing, root)
		}
	}
	return existing
}

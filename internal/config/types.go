// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOutputFormat is returned when an output value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidSchemaEntry is the sentinel error wrapped by InvalidSchemaEntryError.
	ErrInvalidSchemaEntry = errors.New("invalid schema entry")
)

type (
	// Config is the tool configuration as authored in docgap.toml.
	Config struct {
		// ProjectRoot is the path reported file locations are made
		// relative to. Empty means the working directory.
		ProjectRoot string `mapstructure:"project_root" toml:"project_root,omitempty"`

		// Output selects the report format: "human" or "json".
		Output string `mapstructure:"output" toml:"output"`

		// Schemas lists the schema files to audit.
		Schemas []SchemaEntry `mapstructure:"schemas" toml:"schemas"`
	}

	// SchemaEntry configures one schema to audit.
	SchemaEntry struct {
		// File is the schema JSON path, relative to the project root
		// unless absolute.
		File string `mapstructure:"file" toml:"file"`

		// SearchRoots are the source directories scanned for
		// definitions, in priority order.
		SearchRoots []string `mapstructure:"search_roots" toml:"search_roots"`

		// DisplayName labels the schema in the report; defaults to the
		// file name without extension.
		DisplayName string `mapstructure:"display_name" toml:"display_name,omitempty"`

		// SourceExt is the source file extension to scan (default ".rs").
		SourceExt string `mapstructure:"source_ext" toml:"source_ext,omitempty"`
	}

	// InvalidSchemaEntryError is returned when a schema entry is not
	// usable. It wraps ErrInvalidSchemaEntry for errors.Is() compatibility.
	InvalidSchemaEntryError struct {
		Index  int
		Reason string
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: "human",
	}
}

// Validate checks the authored configuration for obvious mistakes.
// Schema file existence is checked later by the audit, where a missing
// file is a reportable condition rather than a config error.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "human", "json":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, c.Output)
	}

	for i, entry := range c.Schemas {
		if strings.TrimSpace(entry.File) == "" {
			return &InvalidSchemaEntryError{Index: i, Reason: "file is required"}
		}
	}

	return nil
}

// Error implements the error interface.
func (e *InvalidSchemaEntryError) Error() string {
	return fmt.Sprintf("invalid schema entry %d: %s", e.Index, e.Reason)
}

// Unwrap returns the sentinel for errors.Is() checks.
func (e *InvalidSchemaEntryError) Unwrap() error {
	return ErrInvalidSchemaEntry
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// StarterConfig is the config written by 'docgap init': one schema entry
// with placeholder paths the user fills in.
func StarterConfig() *Config {
	return &Config{
		Output: "human",
		Schemas: []SchemaEntry{
			{
				File:        "schema.json",
				SearchRoots: []string{"src"},
				DisplayName: "schema",
			},
		},
	}
}

// WriteStarter serializes the starter config to path. Refuses to
// overwrite an existing file.
func WriteStarter(path string) error {
	if fileExists(path) {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := toml.Marshal(StarterConfig())
	if err != nil {
		return fmt.Errorf("marshal starter config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

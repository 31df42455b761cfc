// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Load reads and decodes one schema document. A missing file surfaces as
// an error wrapping os.ErrNotExist so callers can treat it as a
// missing-input condition rather than a parse failure.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}

	return &doc, nil
}

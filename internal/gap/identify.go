// SPDX-License-Identifier: MPL-2.0

package gap

import (
	"fmt"

	"github.com/docgap/docgap/internal/schema"
)

// Identify derives a human-meaningful label for a variant. It is
// best-effort labeling for report display only, never a correctness key.
// Resolution order, first match wins:
//
//  1. the variant's own const value
//  2. the const value of one of its properties, in declared order (the
//     usual shape for tagged record variants)
//  3. the first required member name
//  4. the declared primitive type name
//  5. "unknown"
func Identify(variant *schema.Node) string {
	if variant == nil {
		return "unknown"
	}

	if variant.Has("const") {
		return formatValue(variant.Const)
	}

	for _, name := range variant.Properties.Names() {
		prop := variant.Properties.Get(name)
		if prop.Has("const") {
			return formatValue(prop.Const)
		}
	}

	if len(variant.Required) > 0 {
		return variant.Required[0]
	}

	if variant.Has("type") {
		return variant.Type.Primary()
	}

	return "unknown"
}

// formatValue renders a const/enum literal as a plain string. Generator
// output uses string literals almost exclusively; numbers and booleans
// fall back to their default formatting.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

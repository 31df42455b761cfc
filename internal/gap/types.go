// SPDX-License-Identifier: MPL-2.0

package gap

import "fmt"

// Gap kinds.
const (
	// KindType is a type definition missing its top-level description.
	KindType Kind = "type"
	// KindVariant is a union/enum variant missing its description.
	KindVariant Kind = "variant"
	// KindVariantTitle is an object variant missing the title needed for
	// editor display.
	KindVariantTitle Kind = "variant_title"
	// KindProperty is a record member missing its description.
	KindProperty Kind = "property"
)

type (
	// Kind identifies the documentable unit a gap was found on.
	Kind string

	// Gap is one missing description or title. The classifier fills
	// TypeName, Kind, and ItemName; the resolver attaches File and Line
	// afterwards, or leaves them zero when no source match exists.
	Gap struct {
		TypeName string `json:"type_name"`
		Kind     Kind   `json:"kind"`
		ItemName string `json:"item_name,omitempty"`
		File     string `json:"file,omitempty"`
		Line     int    `json:"line,omitempty"`
	}
)

// Resolved reports whether the gap has a source location attached.
func (g Gap) Resolved() bool {
	return g.File != ""
}

// String renders the gap in report form, e.g.
// "[VARIANT] Animation::Linear -> src/animation.rs:42".
func (g Gap) String() string {
	location := ""
	if g.File != "" && g.Line > 0 {
		location = fmt.Sprintf(" -> %s:%d", g.File, g.Line)
	} else if g.File != "" {
		location = fmt.Sprintf(" -> %s", g.File)
	}

	switch g.Kind {
	case KindType:
		return fmt.Sprintf("[TYPE] %s%s", g.TypeName, location)
	case KindVariant:
		return fmt.Sprintf("[VARIANT] %s::%s%s", g.TypeName, g.ItemName, location)
	case KindVariantTitle:
		return fmt.Sprintf("[VARIANT_TITLE] %s::%s%s", g.TypeName, g.ItemName, location)
	default:
		return fmt.Sprintf("[PROPERTY] %s.%s%s", g.TypeName, g.ItemName, location)
	}
}

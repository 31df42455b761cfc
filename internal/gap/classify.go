// SPDX-License-Identifier: MPL-2.0

// Package gap classifies schema type definitions and reports every
// missing description or title as a Gap record.
package gap

import (
	"strings"

	"github.com/docgap/docgap/internal/schema"
)

// Classify walks one type definition and emits a Gap per missing
// description/title. Shape dispatch is priority ordered: oneOf, then
// anyOf, then enum, then properties, then plain type. A definition is
// assumed to have exactly one shape; the first matching rule owns it.
func Classify(typeName string, def *schema.Node) []Gap {
	if def == nil {
		return nil
	}

	var gaps []Gap
	described := def.Has("description")

	switch {
	case def.Has("oneOf"):
		if !described {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindType})
		}
		for _, variant := range def.OneOf {
			gaps = append(gaps, classifyTaggedVariant(typeName, variant)...)
		}

	case def.Has("anyOf"):
		if !described {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindType})
		}
		for _, variant := range def.AnyOf {
			gaps = append(gaps, classifyOpenVariant(typeName, variant)...)
		}

	case def.Has("enum"):
		if !described {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindType})
		}
		// The plain enum representation has no per-literal description
		// slot, so every literal is flagged unconditionally.
		for _, literal := range def.Enum {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariant, ItemName: formatValue(literal)})
		}

	case def.Has("properties"):
		if !described {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindType})
		}
		for _, name := range def.Properties.Names() {
			if !def.Properties.Get(name).Has("description") {
				gaps = append(gaps, Gap{TypeName: typeName, Kind: KindProperty, ItemName: name})
			}
		}

	case !described:
		// Primitive wrapper like a path or hex newtype. Pure indirections
		// carry no "type" keyword and are never flagged here.
		if def.Has("type") {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindType})
		}
	}

	return gaps
}

// classifyTaggedVariant applies the oneOf rules to a single variant.
func classifyTaggedVariant(typeName string, variant *schema.Node) []Gap {
	if variant == nil {
		return nil
	}

	var gaps []Gap

	// Const or titled variant lacking its own description.
	variantName := ""
	if variant.Has("const") {
		variantName = formatValue(variant.Const)
	}
	if variantName == "" && variant.Title != "" {
		variantName = variant.Title
	}
	if variantName != "" && !variant.Has("description") {
		gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariant, ItemName: variantName})
	}

	// String enumeration embedded inside the union: the format has no
	// per-literal slot, so the literals are flagged as a batch.
	if variant.Has("enum") && variant.Type.Is("string") {
		for _, literal := range variant.Enum {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariant, ItemName: formatValue(literal)})
		}
	}

	// Record variant with no description: documentation is expected on
	// the required members instead.
	if variant.Has("properties") && !variant.Has("description") {
		for _, member := range variant.Required {
			gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariant, ItemName: member})
		}
	}

	// Record variant lacking both title and const tag: editors need a
	// title to display it, independent of description status.
	if variant.Has("properties") && !variant.Has("title") && !variant.Has("const") {
		gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariantTitle, ItemName: Identify(variant)})
	}

	return gaps
}

// classifyOpenVariant applies the anyOf rules to a single variant.
func classifyOpenVariant(typeName string, variant *schema.Node) []Gap {
	if variant == nil {
		return nil
	}

	// Null placeholders express optionality and are never documented.
	if variant.Type.Is("null") {
		return nil
	}

	var gaps []Gap

	switch {
	case variant.PureRef():
		// The referenced definition is checked on its own.
	case variant.Has("$ref") && variant.Has("description"):
		// Indirection with a local description.
	case variant.Has("$ref"):
		gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariant, ItemName: variant.RefName()})
	case !variant.Has("description"):
		id := ""
		if variant.Has("const") {
			id = formatValue(variant.Const)
		}
		if id == "" && variant.Has("type") {
			id = variant.Type.Primary()
		}
		if id == "" {
			id = "unknown"
		}
		gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariant, ItemName: id})
	}

	if variant.Has("properties") && !variant.Has("title") && !variant.Has("const") {
		gaps = append(gaps, Gap{TypeName: typeName, Kind: KindVariantTitle, ItemName: Identify(variant)})
	}

	return gaps
}

// CheckRootProperties applies the property rule to the document's own
// properties, keyed under the document title.
func CheckRootProperties(doc *schema.Document) []Gap {
	if doc == nil {
		return nil
	}

	rootName := doc.RootName()
	var gaps []Gap
	for _, name := range doc.Properties.Names() {
		if !doc.Properties.Get(name).Has("description") {
			gaps = append(gaps, Gap{TypeName: rootName, Kind: KindProperty, ItemName: name})
		}
	}

	return gaps
}

// IsGeneratedVariant reports whether name is a derived duplicate of
// another definition: a numeric-suffixed name whose un-suffixed base also
// exists in $defs. Such definitions are generator artifacts, not
// independently authored types, and are skipped entirely.
func IsGeneratedVariant(name string, defs map[string]*schema.Node) bool {
	base := strings.TrimRight(name, "0123456789")
	if base == "" || base == name {
		return false
	}
	_, ok := defs[base]
	return ok
}

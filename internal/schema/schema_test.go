// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func TestNodeKeyPresence(t *testing.T) {
	var node Node
	if err := json.Unmarshal([]byte(`{"type":"string","description":""}`), &node); err != nil {
		t.Fatalf("unmarshal node: %v", err)
	}

	if !node.Has("description") {
		t.Fatalf("empty description should still count as present")
	}
	if !node.Has("type") {
		t.Fatalf("expected type key")
	}
	if node.Has("enum") {
		t.Fatalf("unexpected enum key")
	}
}

func TestNodePureRef(t *testing.T) {
	var pure Node
	if err := json.Unmarshal([]byte(`{"$ref":"#/$defs/Rect"}`), &pure); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !pure.PureRef() {
		t.Fatalf("expected pure $ref")
	}
	if pure.RefName() != "Rect" {
		t.Fatalf("unexpected ref name: %q", pure.RefName())
	}

	var annotated Node
	if err := json.Unmarshal([]byte(`{"$ref":"#/$defs/Rect","description":"outer frame"}`), &annotated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if annotated.PureRef() {
		t.Fatalf("described $ref must not be pure")
	}
}

func TestNodeBooleanSchemaTolerated(t *testing.T) {
	var node Node
	if err := json.Unmarshal([]byte(`true`), &node); err != nil {
		t.Fatalf("boolean schema should decode to an empty node: %v", err)
	}
	if node.Has("type") || node.PureRef() {
		t.Fatalf("boolean schema should carry no keys")
	}
}

func TestPropertiesPreserveDeclarationOrder(t *testing.T) {
	raw := `{"zulu":{"type":"string"},"alpha":{"type":"number"},"mike":{"const":"Tag"}}`

	var props Properties
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		t.Fatalf("unmarshal properties: %v", err)
	}

	want := []string{"zulu", "alpha", "mike"}
	if got := props.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected declaration order %v, got %v", want, got)
	}

	if props.Len() != 3 {
		t.Fatalf("unexpected length: %d", props.Len())
	}
	if !props.Get("mike").Has("const") {
		t.Fatalf("expected const on mike")
	}
	if props.Get("missing") != nil {
		t.Fatalf("expected nil for unknown property")
	}
}

func TestTypeSetForms(t *testing.T) {
	var single TypeSet
	if err := json.Unmarshal([]byte(`"string"`), &single); err != nil {
		t.Fatalf("unmarshal single: %v", err)
	}
	if !single.Is("string") || single.Primary() != "string" {
		t.Fatalf("unexpected single type: %v", single)
	}

	var many TypeSet
	if err := json.Unmarshal([]byte(`["string","null"]`), &many); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if many.Is("string") {
		t.Fatalf("two-element type set must not match a single name")
	}
	if many.Primary() != "string" {
		t.Fatalf("unexpected primary: %q", many.Primary())
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	content := `{
		"title": "AppConfig",
		"properties": {"theme": {"type": "string"}},
		"$defs": {
			"Zeta": {"type": "string"},
			"Alpha": {"enum": ["A", "B"]}
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.RootName() != "AppConfig" {
		t.Fatalf("unexpected root name: %q", doc.RootName())
	}
	if got := doc.DefNames(); !reflect.DeepEqual(got, []string{"Alpha", "Zeta"}) {
		t.Fatalf("expected sorted def names, got %v", got)
	}
	if doc.Properties.Len() != 1 {
		t.Fatalf("expected one root property")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected error for missing schema")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestRootNameFallback(t *testing.T) {
	doc := &Document{}
	if doc.RootName() != "Root" {
		t.Fatalf("expected Root fallback, got %q", doc.RootName())
	}
}

// SPDX-License-Identifier: MPL-2.0

// Package schema models the subset of JSON Schema emitted by the config
// generator: a document title, root properties, and a $defs map of named
// type definitions shaped as oneOf/anyOf/enum/properties/plain type.
package schema

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

type (
	// Document is one schema file: the root object plus its $defs map.
	Document struct {
		Title       string           `json:"title"`
		Description string           `json:"description"`
		Properties  *Properties      `json:"properties"`
		Defs        map[string]*Node `json:"$defs"`
	}

	// Node is a single schema object: a type definition from $defs, a
	// variant inside oneOf/anyOf, or a property schema. Presence of a
	// keyword matters independently of its value (an empty description
	// still counts as authored), so every node records the exact set of
	// keys it was decoded from; query it with Has.
	Node struct {
		Ref         string      `json:"$ref"`
		Type        TypeSet     `json:"type"`
		Const       any         `json:"const"`
		Title       string      `json:"title"`
		Description string      `json:"description"`
		Enum        []any       `json:"enum"`
		Required    []string    `json:"required"`
		Properties  *Properties `json:"properties"`
		OneOf       []*Node     `json:"oneOf"`
		AnyOf       []*Node     `json:"anyOf"`

		keys map[string]struct{}
	}

	// Properties is an order-preserving properties map. Declaration order
	// is significant: variant identification scans properties in the order
	// the generator wrote them.
	Properties struct {
		names []string
		nodes map[string]*Node
	}

	// TypeSet holds the "type" keyword, which may be a single name or a
	// list of names.
	TypeSet []string
)

// nodeFields mirrors Node for decoding without recursing into
// Node.UnmarshalJSON.
type nodeFields struct {
	Ref         string      `json:"$ref"`
	Type        TypeSet     `json:"type"`
	Const       any         `json:"const"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Enum        []any       `json:"enum"`
	Required    []string    `json:"required"`
	Properties  *Properties `json:"properties"`
	OneOf       []*Node     `json:"oneOf"`
	AnyOf       []*Node     `json:"anyOf"`
}

// UnmarshalJSON decodes a schema node and records its top-level key set.
// Non-object schemas (the boolean forms true/false) decode to an empty
// node rather than failing the whole document.
func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*n = Node{}
		return nil
	}

	var fields nodeFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	keys := make(map[string]struct{}, len(raw))
	for key := range raw {
		keys[key] = struct{}{}
	}

	*n = Node{
		Ref:         fields.Ref,
		Type:        fields.Type,
		Const:       fields.Const,
		Title:       fields.Title,
		Description: fields.Description,
		Enum:        fields.Enum,
		Required:    fields.Required,
		Properties:  fields.Properties,
		OneOf:       fields.OneOf,
		AnyOf:       fields.AnyOf,
		keys:        keys,
	}

	return nil
}

// Has reports whether the node carried the given top-level keyword.
func (n *Node) Has(key string) bool {
	if n == nil {
		return false
	}
	_, ok := n.keys[key]
	return ok
}

// PureRef reports whether the node is a bare indirection: a $ref and
// nothing else.
func (n *Node) PureRef() bool {
	if n == nil {
		return false
	}
	return len(n.keys) == 1 && n.Has("$ref")
}

// RefName returns the last path segment of the node's $ref, which for
// generator output is the referenced definition's name.
func (n *Node) RefName() string {
	if n == nil || n.Ref == "" {
		return ""
	}
	ref := n.Ref
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '/' {
			return ref[i+1:]
		}
	}
	return ref
}

// UnmarshalJSON decodes a properties object keeping declaration order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties: expected object, got %v", tok)
	}

	p.names = nil
	p.nodes = make(map[string]*Node)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("properties: expected string key, got %v", keyTok)
		}

		node := &Node{}
		if err := dec.Decode(node); err != nil {
			return err
		}

		if _, dup := p.nodes[key]; !dup {
			p.names = append(p.names, key)
		}
		p.nodes[key] = node
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns property names in declaration order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// Get returns the property schema for name, or nil.
func (p *Properties) Get(name string) *Node {
	if p == nil {
		return nil
	}
	return p.nodes[name]
}

// UnmarshalJSON accepts both the single-name and list forms of "type".
func (t *TypeSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TypeSet{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = TypeSet(many)
	return nil
}

// Primary returns the first type name, or "".
func (t TypeSet) Primary() string {
	if len(t) == 0 {
		return ""
	}
	return t[0]
}

// Is reports whether the type is exactly the single given name.
func (t TypeSet) Is(name string) bool {
	return len(t) == 1 && t[0] == name
}

// RootName returns the document title, falling back to "Root" for
// untitled schemas. Root-property gaps are keyed under this name.
func (d *Document) RootName() string {
	if d == nil || d.Title == "" {
		return "Root"
	}
	return d.Title
}

// DefNames returns the $defs keys in sorted order so classification is
// deterministic across runs.
func (d *Document) DefNames() []string {
	if d == nil || len(d.Defs) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Defs))
	for name := range d.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SPDX-License-Identifier: MPL-2.0

package gap

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/docgap/docgap/internal/schema"
)

func mustNode(t *testing.T, raw string) *schema.Node {
	t.Helper()
	node := &schema.Node{}
	if err := json.Unmarshal([]byte(raw), node); err != nil {
		t.Fatalf("unmarshal node: %v", err)
	}
	return node
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "top-level const wins",
			raw:  `{"const":"Linear","properties":{"kind":{"const":"Other"}}}`,
			want: "Linear",
		},
		{
			name: "property const in declared order",
			raw:  `{"properties":{"style":{"type":"string"},"kind":{"const":"Bar"}},"required":["style"]}`,
			want: "Bar",
		},
		{
			name: "first required member",
			raw:  `{"properties":{"x":{"type":"number"}},"required":["x","y"]}`,
			want: "x",
		},
		{
			name: "primitive type name",
			raw:  `{"type":"string"}`,
			want: "string",
		},
		{
			name: "fallback",
			raw:  `{}`,
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identify(mustNode(t, tt.raw)); got != tt.want {
				t.Fatalf("Identify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdentifyNilVariant(t *testing.T) {
	if got := Identify(nil); got != "unknown" {
		t.Fatalf("Identify(nil) = %q", got)
	}
}

// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"testing"

	"github.com/docgap/docgap/internal/gap"
)

func TestComputeMetrics(t *testing.T) {
	gaps := []gap.Gap{
		{TypeName: "Mode", Kind: gap.KindType, File: "src/a.rs", Line: 1},
		{TypeName: "Mode", Kind: gap.KindVariant, ItemName: "Fast", File: "src/a.rs", Line: 2},
		{TypeName: "Mode", Kind: gap.KindVariant, ItemName: "Slow"},
		{TypeName: "Op", Kind: gap.KindVariantTitle, ItemName: "x"},
		{TypeName: "Cfg", Kind: gap.KindProperty, ItemName: "theme", File: "src/b.rs", Line: 9},
	}

	m := ComputeMetrics(gaps)
	want := Metrics{Total: 5, Types: 1, Variants: 2, VariantTitles: 1, Properties: 1, Unresolved: 2}
	if m != want {
		t.Fatalf("ComputeMetrics = %+v, want %+v", m, want)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	if m := ComputeMetrics(nil); m != (Metrics{}) {
		t.Fatalf("empty input produced %+v", m)
	}
}

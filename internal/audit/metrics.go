// SPDX-License-Identifier: MPL-2.0

package audit

import "github.com/docgap/docgap/internal/gap"

// Metrics breaks a schema's gap count down by kind.
type Metrics struct {
	Total         int `json:"total"`
	Types         int `json:"types"`
	Variants      int `json:"variants"`
	VariantTitles int `json:"variant_titles"`
	Properties    int `json:"properties"`
	Unresolved    int `json:"unresolved"`
}

// ComputeMetrics tallies gaps by kind and counts those with no resolved
// source location.
func ComputeMetrics(gaps []gap.Gap) Metrics {
	metrics := Metrics{Total: len(gaps)}

	for _, g := range gaps {
		switch g.Kind {
		case gap.KindType:
			metrics.Types++
		case gap.KindVariant:
			metrics.Variants++
		case gap.KindVariantTitle:
			metrics.VariantTitles++
		case gap.KindProperty:
			metrics.Properties++
		}
		if !g.Resolved() {
			metrics.Unresolved++
		}
	}

	return metrics
}

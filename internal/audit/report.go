// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/docgap/docgap/internal/gap"
)

const bannerWidth = 70

// WriteReport renders the full human-readable report: one banner section
// per schema with per-kind counts, gaps grouped by resolved file and
// sorted by line, an External/Unknown bucket for unresolved gaps, and a
// combined summary when more than one schema was checked.
func WriteReport(w io.Writer, result *Result) error {
	if result == nil {
		return errors.New("result is nil")
	}

	var sb strings.Builder
	for _, sr := range result.Schemas {
		if sr.LoadError != "" {
			sb.WriteString(fmt.Sprintf("Error: %s\n", sr.LoadError))
			continue
		}
		writeSchemaSection(&sb, sr)
	}

	if len(result.Schemas) > 1 {
		writeCombinedSummary(&sb, result)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// WriteSummaryJSON encodes the machine-readable result.
func WriteSummaryJSON(w io.Writer, result *Result) error {
	if result == nil {
		return errors.New("result is nil")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	return nil
}

func writeSchemaSection(sb *strings.Builder, sr SchemaResult) {
	banner := strings.Repeat("=", bannerWidth)

	sb.WriteString("\n" + banner + "\n")
	sb.WriteString(fmt.Sprintf("MISSING DOCSTRINGS IN SCHEMA (%s)\n", sr.DisplayName))
	sb.WriteString(banner + "\n")

	sb.WriteString(fmt.Sprintf("\nTotal: %d missing docstrings/titles\n", sr.Metrics.Total))
	sb.WriteString(fmt.Sprintf("  - %d types\n", sr.Metrics.Types))
	sb.WriteString(fmt.Sprintf("  - %d variants\n", sr.Metrics.Variants))
	sb.WriteString(fmt.Sprintf("  - %d variant titles\n", sr.Metrics.VariantTitles))
	sb.WriteString(fmt.Sprintf("  - %d properties\n", sr.Metrics.Properties))

	byFile, external := groupByFile(sr.Gaps)

	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		gaps := byFile[file]
		sort.SliceStable(gaps, func(i, j int) bool {
			return gaps[i].Line < gaps[j].Line
		})

		sb.WriteString(fmt.Sprintf("\n%s:\n", file))
		sb.WriteString(strings.Repeat("-", len(file)) + "\n")
		for _, g := range gaps {
			sb.WriteString("  " + g.String() + "\n")
		}
	}

	if len(external) > 0 {
		sb.WriteString("\nExternal/Unknown location:\n")
		sb.WriteString(strings.Repeat("-", 25) + "\n")
		for _, g := range external {
			sb.WriteString("  " + g.String() + "\n")
		}
	}

	sb.WriteString("\n" + banner + "\n")
}

func writeCombinedSummary(sb *strings.Builder, result *Result) {
	banner := strings.Repeat("=", bannerWidth)

	sb.WriteString("\n" + banner + "\n")
	sb.WriteString("COMBINED SUMMARY\n")
	sb.WriteString(banner + "\n")
	sb.WriteString(fmt.Sprintf("Total missing docstrings across all schemas: %d\n", result.TotalGaps))
	if result.LoadErrors > 0 {
		sb.WriteString(fmt.Sprintf("Schemas that failed to load: %d\n", result.LoadErrors))
	}
	sb.WriteString(banner + "\n")
}

// groupByFile buckets gaps by resolved file; unresolved gaps keep their
// classification order in the external bucket.
func groupByFile(gaps []gap.Gap) (map[string][]gap.Gap, []gap.Gap) {
	byFile := make(map[string][]gap.Gap)
	var external []gap.Gap

	for _, g := range gaps {
		if g.Resolved() {
			byFile[g.File] = append(byFile[g.File], g)
			continue
		}
		external = append(external, g)
	}

	return byFile, external
}

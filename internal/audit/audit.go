// SPDX-License-Identifier: MPL-2.0

// Package audit orchestrates schema documentation audits: load each
// schema, classify every type definition, resolve source locations for
// the gaps, and aggregate results across schemas.
package audit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/docgap/docgap/internal/gap"
	"github.com/docgap/docgap/internal/locate"
	"github.com/docgap/docgap/internal/schema"
)

type (
	// SchemaResult is the outcome for one configured schema. Either
	// LoadError is set (the schema could not be read) or Gaps and
	// Metrics are populated. NotFound distinguishes a missing schema
	// file from a parse failure.
	SchemaResult struct {
		DisplayName string    `json:"display_name"`
		SchemaFile  string    `json:"schema_file"`
		LoadError   string    `json:"load_error,omitempty"`
		NotFound    bool      `json:"not_found,omitempty"`
		Metrics     Metrics   `json:"metrics"`
		Gaps        []gap.Gap `json:"gaps"`
	}

	// Result aggregates an audit run across all configured schemas.
	Result struct {
		Schemas    []SchemaResult `json:"schemas"`
		TotalGaps  int            `json:"total_gaps"`
		LoadErrors int            `json:"load_errors"`
	}
)

// ExitCode maps the result onto the process exit status: zero only when
// every schema loaded and no gap was found.
func (r *Result) ExitCode() int {
	if r == nil || r.LoadErrors > 0 || r.TotalGaps > 0 {
		return 1
	}
	return 0
}

// Run executes the audit. A schema that fails to load is recorded as a
// load error and does not stop the remaining schemas; only option
// validation and context cancellation abort the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, sc := range opts.Schemas {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		sr := checkSchema(opts, sc)
		result.Schemas = append(result.Schemas, sr)

		if sr.LoadError != "" {
			result.LoadErrors++
			continue
		}
		result.TotalGaps += len(sr.Gaps)
	}

	return result, nil
}

func checkSchema(opts Options, sc SchemaConfig) SchemaResult {
	sr := SchemaResult{
		DisplayName: sc.DisplayName,
		SchemaFile:  sc.SchemaFile,
	}

	doc, err := schema.Load(sc.SchemaFile)
	if err != nil {
		sr.LoadError = err.Error()
		sr.NotFound = errors.Is(err, os.ErrNotExist)
		return sr
	}

	gaps := gap.CheckRootProperties(doc)
	for _, name := range doc.DefNames() {
		if gap.IsGeneratedVariant(name, doc.Defs) {
			continue
		}
		gaps = append(gaps, gap.Classify(name, doc.Defs[name])...)
	}

	roots := existingRoots(sc.SearchRoots)
	opts.Logger.Info("scanning source files",
		"schema", sc.DisplayName,
		"roots", len(roots),
		"gaps", len(gaps))

	resolver := locate.NewResolver(roots, sc.SourceExt, opts.ProjectRoot)
	for i := range gaps {
		gaps[i].File, gaps[i].Line = resolver.Resolve(gaps[i].TypeName, gaps[i].ItemName, gaps[i].Kind)
	}

	sr.Gaps = gaps
	sr.Metrics = ComputeMetrics(gaps)
	return sr
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("context canceled: %w", ctx.Err())
	default:
		return nil
	}
}

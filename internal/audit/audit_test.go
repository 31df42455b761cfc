// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const modeSchema = `{
	"title": "AnimationConfig",
	"properties": {
		"mode": {"description": "which animation curve to use", "$ref": "#/$defs/Mode"}
	},
	"$defs": {
		"Mode": {"enum": ["Fast", "Slow"]}
	}
}`

const modeSource = `pub enum Mode {
    Fast,
    Slow,
}
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatalf("mkdir src: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "schema.json"), []byte(modeSchema), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "animation.rs"), []byte(modeSource), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	return root
}

func TestRunResolvesGapsAgainstSourceTree(t *testing.T) {
	root := writeProject(t)

	result, err := Run(context.Background(), Options{
		ProjectRoot: root,
		Schemas: []SchemaConfig{{
			SchemaFile:  "schema.json",
			SearchRoots: []string{"src"},
		}},
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Schemas) != 1 {
		t.Fatalf("expected one schema result, got %d", len(result.Schemas))
	}
	sr := result.Schemas[0]
	if sr.DisplayName != "schema" {
		t.Fatalf("display name = %q, want derived %q", sr.DisplayName, "schema")
	}

	// The undescribed Mode definition plus its two literals.
	if sr.Metrics.Types != 1 || sr.Metrics.Variants != 2 {
		t.Fatalf("metrics = %+v, want 1 type and 2 variants", sr.Metrics)
	}
	if sr.Metrics.Unresolved != 0 {
		t.Fatalf("all gaps should resolve into src, metrics = %+v", sr.Metrics)
	}

	for _, g := range sr.Gaps {
		if g.File != filepath.Join("src", "animation.rs") {
			t.Fatalf("gap %v resolved to %q, want src/animation.rs", g, g.File)
		}
	}

	if result.ExitCode() != 1 {
		t.Fatalf("gaps present, exit code = %d, want 1", result.ExitCode())
	}
}

func TestRunCleanSchemaExitsZero(t *testing.T) {
	root := t.TempDir()
	clean := `{
		"title": "AppConfig",
		"properties": {
			"theme": {"description": "colour theme name", "type": "string"}
		},
		"$defs": {}
	}`
	if err := os.WriteFile(filepath.Join(root, "schema.json"), []byte(clean), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	result, err := Run(context.Background(), Options{
		ProjectRoot: root,
		Schemas:     []SchemaConfig{{SchemaFile: "schema.json"}},
		Logger:      quietLogger(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.TotalGaps != 0 || result.LoadErrors != 0 {
		t.Fatalf("clean schema produced %+v", result)
	}
	if result.ExitCode() != 0 {
		t.Fatalf("exit code = %d, want 0", result.ExitCode())
	}
}

func TestRunMissingSchemaIsLoadErrorNotFailure(t *testing.T) {
	root := writeProject(t)

	result, err := Run(context.Background(), Options{
		ProjectRoot: root,
		Schemas: []SchemaConfig{
			{SchemaFile: "missing.json"},
			{SchemaFile: "schema.json", SearchRoots: []string{"src"}},
		},
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("a missing schema must not abort the run: %v", err)
	}

	if result.LoadErrors != 1 {
		t.Fatalf("load errors = %d, want 1", result.LoadErrors)
	}
	if result.Schemas[0].LoadError == "" {
		t.Fatalf("first result should carry the load error")
	}
	if !result.Schemas[0].NotFound {
		t.Fatalf("missing file should be flagged as not found")
	}
	// The second schema is still audited.
	if len(result.Schemas[1].Gaps) == 0 {
		t.Fatalf("second schema should still report its gaps")
	}
	if result.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", result.ExitCode())
	}
}

func TestRunCanceledContext(t *testing.T) {
	root := writeProject(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		ProjectRoot: root,
		Schemas:     []SchemaConfig{{SchemaFile: "schema.json"}},
		Logger:      quietLogger(),
	})
	if err == nil {
		t.Fatalf("canceled context must abort the run")
	}
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	root := t.TempDir()

	if _, err := Run(context.Background(), Options{ProjectRoot: root, Logger: quietLogger()}); err == nil {
		t.Fatalf("no schemas configured must be rejected")
	}

	opts := Options{
		ProjectRoot:  root,
		Schemas:      []SchemaConfig{{SchemaFile: "schema.json"}},
		OutputFormat: "yaml",
		Logger:       quietLogger(),
	}
	if _, err := Run(context.Background(), opts); err == nil || !strings.Contains(err.Error(), "output format") {
		t.Fatalf("unsupported format must be rejected, got %v", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	root := t.TempDir()

	opts := Options{
		ProjectRoot: root,
		Schemas: []SchemaConfig{{
			SchemaFile:  "config/schema.json",
			SearchRoots: []string{"src", "/abs/elsewhere"},
			SourceExt:   "rs",
		}},
	}
	if err := os.MkdirAll(filepath.Join(root, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "config", "schema.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := opts.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	sc := opts.Schemas[0]
	if sc.SchemaFile != filepath.Join(root, "config", "schema.json") {
		t.Fatalf("schema file not joined to project root: %q", sc.SchemaFile)
	}
	if sc.DisplayName != "schema" {
		t.Fatalf("display name = %q, want basename without extension", sc.DisplayName)
	}
	if sc.SourceExt != ".rs" {
		t.Fatalf("source ext = %q, want dot-prefixed .rs", sc.SourceExt)
	}
	if sc.SearchRoots[0] != filepath.Join(root, "src") {
		t.Fatalf("relative root not joined: %q", sc.SearchRoots[0])
	}
	if sc.SearchRoots[1] != "/abs/elsewhere" {
		t.Fatalf("absolute root must pass through: %q", sc.SearchRoots[1])
	}
	if opts.OutputFormat != OutputFormatHuman {
		t.Fatalf("default output format = %q", opts.OutputFormat)
	}
	if opts.Logger == nil {
		t.Fatalf("Normalize must install a default logger")
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docgap/docgap/internal/audit"
	"github.com/docgap/docgap/internal/config"
	"github.com/docgap/docgap/internal/issue"
)

var (
	checkSchemaFiles  []string
	checkSearchRoots  []string
	checkDisplayName  string
	checkSourceExt    string
	checkProjectRoot  string
	checkOutputFormat string
	checkJSON         bool
	checkOutPath      string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Audit configured schemas for documentation gaps",
		Long: `Audit one or more JSON Schemas for missing descriptions and titles.

Schemas come from docgap.toml, or from --schema-file/--search-root for
one-off runs. Every gap is resolved back to its defining source line
where possible; the exit status is non-zero when any schema fails to
load or any gap is found.`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().StringArrayVar(&checkSchemaFiles, "schema-file", nil, "schema file to audit (repeatable; overrides the config file)")
	checkCmd.Flags().StringArrayVar(&checkSearchRoots, "search-root", nil, "source directory to scan, in priority order (repeatable)")
	checkCmd.Flags().StringVar(&checkDisplayName, "display-name", "", "report label for a single --schema-file")
	checkCmd.Flags().StringVar(&checkSourceExt, "source-ext", "", "source file extension to scan (default .rs)")
	checkCmd.Flags().StringVar(&checkProjectRoot, "project-root", "", "root reported file paths are made relative to (default current directory)")
	checkCmd.Flags().StringVar(&checkOutputFormat, "output", "", "output format: human or json")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON summary to stdout (alias for --output json)")
	checkCmd.Flags().StringVarP(&checkOutPath, "out", "o", "", "also write the plain report to this path")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		renderIssue(cmd, issue.ConfigLoadFailedId)
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	schemas := schemasFromFlags()
	if len(schemas) == 0 {
		schemas = schemasFromConfig(cfg)
	}
	if len(schemas) == 0 {
		renderIssue(cmd, issue.NoSchemasConfiguredId)
		return &ExitError{Code: 1, Err: errors.New("no schemas configured")}
	}

	outputFormat := audit.OutputFormat(checkOutputFormat)
	if outputFormat == "" && cfg.Output != "" {
		outputFormat = audit.OutputFormat(cfg.Output)
	}
	if checkJSON {
		outputFormat = audit.OutputFormatJSON
	}

	projectRoot := checkProjectRoot
	if projectRoot == "" {
		projectRoot = cfg.ProjectRoot
	}

	opts := audit.Options{
		ProjectRoot:  projectRoot,
		Schemas:      schemas,
		OutputFormat: outputFormat,
	}

	result, err := audit.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if checkOutPath != "" {
		if err := writeReportFile(checkOutPath, result); err != nil {
			renderIssue(cmd, issue.ReportWriteFailedId)
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.OutputFormat == audit.OutputFormatJSON {
		if err := audit.WriteSummaryJSON(out, result); err != nil {
			return err
		}
	} else {
		if err := audit.WriteReport(out, result); err != nil {
			return err
		}
		writeStyledSummary(cmd, result)
		renderLoadErrorGuidance(cmd, result)
	}

	if code := result.ExitCode(); code != 0 {
		return &ExitError{
			Code: code,
			Err:  fmt.Errorf("found %d documentation gaps (%d schemas failed to load)", result.TotalGaps, result.LoadErrors),
		}
	}

	return nil
}

// schemasFromFlags builds schema configs for a one-off run. All
// --schema-file entries share the flag-provided search roots.
func schemasFromFlags() []audit.SchemaConfig {
	schemas := make([]audit.SchemaConfig, 0, len(checkSchemaFiles))
	for _, file := range checkSchemaFiles {
		sc := audit.SchemaConfig{
			SchemaFile:  file,
			SearchRoots: append([]string(nil), checkSearchRoots...),
			SourceExt:   checkSourceExt,
		}
		if len(checkSchemaFiles) == 1 {
			sc.DisplayName = checkDisplayName
		}
		schemas = append(schemas, sc)
	}
	return schemas
}

func schemasFromConfig(cfg *config.Config) []audit.SchemaConfig {
	schemas := make([]audit.SchemaConfig, 0, len(cfg.Schemas))
	for _, entry := range cfg.Schemas {
		ext := entry.SourceExt
		if checkSourceExt != "" {
			ext = checkSourceExt
		}
		schemas = append(schemas, audit.SchemaConfig{
			SchemaFile:  entry.File,
			SearchRoots: append([]string(nil), entry.SearchRoots...),
			DisplayName: entry.DisplayName,
			SourceExt:   ext,
		})
	}
	return schemas
}

func writeStyledSummary(cmd *cobra.Command, result *audit.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Documentation Gap Summary"))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Schemas checked:"), CmdStyle.Render(strconv.Itoa(len(result.Schemas))))

	totalStyle := SuccessStyle
	if result.TotalGaps > 0 {
		totalStyle = ErrorStyle
	}
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Total gaps:"), totalStyle.Render(strconv.Itoa(result.TotalGaps)))

	if result.LoadErrors > 0 {
		fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Load errors:"), WarningStyle.Render(strconv.Itoa(result.LoadErrors)))
	}
}

func writeReportFile(path string, result *audit.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	return audit.WriteReport(f, result)
}

// renderLoadErrorGuidance prints remediation guidance for schemas that
// failed to load, distinguishing missing files from parse failures.
func renderLoadErrorGuidance(cmd *cobra.Command, result *audit.Result) {
	if result.LoadErrors == 0 {
		return
	}

	notFound, parseError := false, false
	for _, sr := range result.Schemas {
		if sr.LoadError == "" {
			continue
		}
		if sr.NotFound {
			notFound = true
		} else {
			parseError = true
		}
	}

	if notFound {
		renderIssue(cmd, issue.SchemaNotFoundId)
	}
	if parseError {
		renderIssue(cmd, issue.SchemaParseErrorId)
	}
}

// renderIssue prints a glamour-rendered issue to stderr, falling back to
// the raw markdown when rendering fails (e.g. no usable terminal).
func renderIssue(cmd *cobra.Command, id issue.Id) {
	is := issue.Get(id)
	if is == nil {
		return
	}

	rendered, err := is.Render("dark")
	if err != nil {
		rendered = string(is.MarkdownMsg())
	}
	fmt.Fprintln(cmd.ErrOrStderr(), rendered)
}

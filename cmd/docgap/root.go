// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/docgap/docgap/internal/config"
	"github.com/docgap/docgap/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose error output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "docgap",
		Short: "Audit generated JSON Schemas for missing documentation",
		Long: TitleStyle.Render("docgap") + SubtitleStyle.Render(" - JSON Schema documentation gap auditor") + `

docgap inspects machine-generated JSON Schemas for a strongly-typed
configuration format, finds every type, variant, and property missing a
human-authored description or title, and maps each gap to the source
line where the doc comment belongs.

Intended for CI: the exit status is non-zero whenever a schema fails to
load or any gap is found, so a "no undocumented field" policy can be
enforced on every change.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'docgap init' to create a docgap.toml
  2. Point it at your schema files and source directories
  3. Run 'docgap check'

` + SubtitleStyle.Render("Examples:") + `
  docgap check                          Audit schemas from docgap.toml
  docgap check --schema-file schema.json --search-root src
  docgap check --output json            Machine-readable summary
  docgap config show                    Show effective configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose error output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docgap.toml)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig wires the --config flag into config loading.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
}

// formatErrorForDisplay renders an error for the terminal, expanding
// ActionableError suggestions and, in verbose mode, the error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}

	return err.Error()
}

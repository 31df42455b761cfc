// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docgap/docgap/internal/config"
)

var (
	initForce bool

	// initCmd creates a starter docgap.toml
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a starter docgap.toml in the current directory",
		Long: `Create a starter docgap.toml in the current directory.

The generated file contains one example schema entry; point it at your
schema files and source directories, then run 'docgap check'.`,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing docgap.toml")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := config.ConfigFileName + "." + config.ConfigFileExt
	if len(args) > 0 {
		filename = args[0]
	}

	if initForce {
		if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove existing config: %w", err)
		}
	}

	if err := config.WriteStarter(filename); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(filename)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(out, "  1. Edit the schema entries to match your project")
	fmt.Fprintln(out, "  2. Run 'docgap check'")

	return nil
}

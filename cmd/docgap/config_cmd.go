// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/docgap/docgap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docgap configuration",
	Long: `Manage docgap configuration.

Configuration is looked up as ./docgap.toml, then in:
  - Linux: ~/.config/docgap/docgap.toml
  - macOS: ~/Library/Application Support/docgap/docgap.toml
  - Windows: %APPDATA%\docgap\docgap.toml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, SubtitleStyle.Render("No config file found; showing defaults."))
			} else {
				fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Config file:"), CmdStyle.Render(path))
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, string(data))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})
}

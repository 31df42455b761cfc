// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for docgap.
//
// This package implements the Cobra command hierarchy for the docgap CLI:
// the root command, the check command that runs the audit, and the
// config/init helpers.
package cmd

// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/docgap/docgap/cmd/docgap"

func main() {
	cmd.Execute()
}

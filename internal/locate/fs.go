// SPDX-License-Identifier: MPL-2.0

package locate

import (
	"os"
	"path/filepath"
	"strings"
)

// Directories that never hold authored source definitions.
var defaultSkipDirs = map[string]struct{}{
	".git":         {},
	"target":       {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	".idea":        {},
	".vscode":      {},
}

// listSourceFiles walks root collecting files with the given extension.
// WalkDir visits entries in lexical order, which keeps resolution
// deterministic. Unreadable directories are skipped rather than aborting
// the scan; a nonexistent root yields no files.
func listSourceFiles(root, ext string) []string {
	ext = strings.ToLower(ext)

	var files []string
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if _, skip := defaultSkipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.ToLower(filepath.Ext(d.Name())) == ext {
			files = append(files, path)
		}

		return nil
	})

	return files
}

func readFileLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return strings.Split(string(data), "\n"), nil
}

// SPDX-License-Identifier: MPL-2.0

// Package locate maps schema names back to defining lines in a Rust
// source tree. It is a deliberate lightweight substitute for a real
// parser: regex over lines plus manual brace-depth tracking.
package locate

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/docgap/docgap/internal/gap"
)

// Resolver scans an ordered list of search roots for type, variant, and
// property definitions. Roots act as a priority list: the first
// structural match across roots (in declared order) and files (in
// lexical walk order) wins. Resolution is read-only and never fails;
// a miss yields ("", 0).
type Resolver struct {
	roots       []string
	ext         string
	projectRoot string

	files []string
	lines map[string][]string
}

var attrLinePattern = regexp.MustCompile(`^\s*#\[.*\]\s*$`)

// NewResolver builds a resolver over the given search roots. ext is the
// source file extension (".rs" for the generator's Rust definitions);
// projectRoot, when set, relativizes matched file paths that fall
// inside it.
func NewResolver(roots []string, ext, projectRoot string) *Resolver {
	if ext == "" {
		ext = ".rs"
	}

	r := &Resolver{
		roots:       append([]string(nil), roots...),
		ext:         ext,
		projectRoot: projectRoot,
		lines:       make(map[string][]string),
	}

	for _, root := range r.roots {
		r.files = append(r.files, listSourceFiles(root, r.ext)...)
	}

	return r
}

// Resolve finds the defining file and 1-based line for a gap. For
// KindType it matches the type's own definition line; for the other
// kinds it first locates the enclosing type, then matches the item
// within that type's brace scope.
func (r *Resolver) Resolve(typeName, itemName string, kind gap.Kind) (string, int) {
	if kind == gap.KindType {
		return r.resolveType(typeName)
	}
	return r.resolveMember(typeName, itemName, kind)
}

func (r *Resolver) resolveType(typeName string) (string, int) {
	patterns := typePatterns(typeName)

	for _, file := range r.files {
		lines, ok := r.readLines(file)
		if !ok {
			continue
		}
		for _, pattern := range patterns {
			for i, line := range lines {
				if pattern.MatchString(line) {
					return r.relativize(file), i + 1
				}
			}
		}
	}

	return "", 0
}

func (r *Resolver) resolveMember(typeName, itemName string, kind gap.Kind) (string, int) {
	parent := parentPattern(typeName)
	matcher := newMemberMatcher(itemName, kind)

	for _, file := range r.files {
		lines, ok := r.readLines(file)
		if !ok {
			continue
		}

		inType := false
		braceDepth := 0
		enteredBody := false

		for i, line := range lines {
			if parent.MatchString(line) {
				inType = true
				braceDepth = 0
				enteredBody = false
			}

			if !inType {
				continue
			}

			if strings.Contains(line, "{") {
				enteredBody = true
			}
			braceDepth += strings.Count(line, "{") - strings.Count(line, "}")

			if matcher.matches(lines, i) {
				return r.relativize(file), i + 1
			}

			// Only terminate after the body was actually entered; the
			// opening brace may sit on a later line than the name.
			if enteredBody && braceDepth <= 0 {
				inType = false
			}
		}
	}

	return "", 0
}

// memberMatcher holds the line patterns for one item. strict patterns
// match on their own; bare matches only when the preceding line is an
// attribute (variants are often written as `#[serde(...)]` followed by
// the bare identifier).
type memberMatcher struct {
	strict []*regexp.Regexp
	bare   *regexp.Regexp
}

func newMemberMatcher(itemName string, kind gap.Kind) memberMatcher {
	item := regexp.QuoteMeta(itemName)

	if kind == gap.KindProperty {
		return memberMatcher{
			strict: []*regexp.Regexp{
				regexp.MustCompile(`pub\s+` + item + `\s*:`),
			},
		}
	}

	return memberMatcher{
		strict: []*regexp.Regexp{
			regexp.MustCompile(`^\s*` + item + `\s*[,({]`),
			regexp.MustCompile(`^\s*` + item + `\s*$`),
		},
		bare: regexp.MustCompile(`^\s*` + item + `\b`),
	}
}

func (m memberMatcher) matches(lines []string, idx int) bool {
	line := lines[idx]
	for _, pattern := range m.strict {
		if pattern.MatchString(line) {
			return true
		}
	}

	if m.bare != nil && idx > 0 && attrLinePattern.MatchString(lines[idx-1]) {
		return m.bare.MatchString(line)
	}

	return false
}

func (r *Resolver) readLines(file string) ([]string, bool) {
	if cached, ok := r.lines[file]; ok {
		return cached, cached != nil
	}

	lines, err := readFileLines(file)
	if err != nil {
		// Unreadable files are skipped silently; resolution degrades to
		// unresolved for anything that would have matched there.
		r.lines[file] = nil
		return nil, false
	}

	r.lines[file] = lines
	return lines, true
}

func (r *Resolver) relativize(path string) string {
	if r.projectRoot == "" {
		return path
	}

	rel, err := filepath.Rel(r.projectRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}

func typePatterns(typeName string) []*regexp.Regexp {
	name := regexp.QuoteMeta(typeName)
	return []*regexp.Regexp{
		regexp.MustCompile(`pub\s+enum\s+` + name + `\b`),
		regexp.MustCompile(`pub\s+struct\s+` + name + `\b`),
	}
}

func parentPattern(typeName string) *regexp.Regexp {
	return regexp.MustCompile(`pub\s+(?:enum|struct)\s+` + regexp.QuoteMeta(typeName) + `\b`)
}


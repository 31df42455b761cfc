// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SchemaNotFoundId Id = iota + 1
	SchemaParseErrorId
	ConfigLoadFailedId
	NoSchemasConfiguredId
	ReportWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links into the docgap docs
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	schemaNotFoundIssue = &Issue{
		id: SchemaNotFoundId,
		mdMsg: `
# Schema file not found!

A configured schema file does not exist on disk.

## Things you can try:
- Regenerate the schemas before auditing:
~~~
$ cargo run --bin schemagen
~~~

- Check the 'file' paths in your docgap.toml:
~~~toml
[[schemas]]
file = "schema.json"
search_roots = ["src"]
~~~

- Paths are resolved relative to the project root unless absolute`,
	}

	schemaParseErrorIssue = &Issue{
		id: SchemaParseErrorId,
		mdMsg: `
# Schema file could not be parsed!

The schema file exists but does not contain valid JSON.

## Things you can try:
- Regenerate the schema; a partial write can leave truncated JSON behind
- Validate the file with a JSON linter
- Make sure the configured path points at the schema, not at source code`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

Your docgap.toml exists but could not be read or parsed.

## Things you can try:
- Check the TOML syntax
- Compare against a fresh starter config:
~~~
$ docgap init
~~~

- Inspect the effective configuration:
~~~
$ docgap config show
~~~`,
	}

	noSchemasConfiguredIssue = &Issue{
		id: NoSchemasConfiguredId,
		mdMsg: `
# No schemas configured!

docgap needs at least one schema to audit.

## Things you can try:
- Pass one on the command line:
~~~
$ docgap check --schema-file schema.json --search-root src
~~~

- Or create a config file:
~~~
$ docgap init
~~~

## Example docgap.toml:
~~~toml
output = "human"

[[schemas]]
file = "schema.json"
search_roots = ["komorebi/src", "komorebi-themes/src"]
display_name = "komorebi"
~~~`,
	}

	reportWriteFailedIssue = &Issue{
		id: ReportWriteFailedId,
		mdMsg: `
# Report could not be written!

The audit finished but the report file could not be created.

## Things you can try:
- Check that the output directory exists and is writable
- Pass a different path with --out`,
	}

	issues = map[Id]*Issue{
		schemaNotFoundIssue.Id():      schemaNotFoundIssue,
		schemaParseErrorIssue.Id():    schemaParseErrorIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		noSchemasConfiguredIssue.Id(): noSchemasConfiguredIssue,
		reportWriteFailedIssue.Id():   reportWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		SchemaNotFoundId,
		SchemaParseErrorId,
		ConfigLoadFailedId,
		NoSchemasConfiguredId,
		ReportWriteFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if SchemaNotFoundId != 1 {
		t.Errorf("SchemaNotFoundId = %d, want 1", SchemaNotFoundId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{SchemaNotFoundId, false, "Schema file not found"},
		{SchemaParseErrorId, false, "could not be parsed"},
		{ConfigLoadFailedId, false, "Configuration could not be loaded"},
		{NoSchemasConfiguredId, false, "No schemas configured"},
		{ReportWriteFailedId, false, "Report could not be written"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			is := Get(tt.id)

			if tt.wantNil {
				if is != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if is == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if tt.contains != "" && !strings.Contains(string(is.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	all := Values()

	if len(all) != 5 {
		t.Errorf("Values() returned %d issues, want 5", len(all))
	}
	for _, is := range all {
		if is.Id() == 0 {
			t.Error("found issue with ID 0")
		}
		if is.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty MarkdownMsg", is.Id())
		}
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	for _, is := range Values() {
		rendered, err := is.Render("")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", is.Id(), err)
		}
		if rendered == "" {
			t.Errorf("issue %d rendered to empty string", is.Id())
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	withLinks := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := withLinks.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}

	noLinks := &Issue{id: Id(9998), mdMsg: "# Test Issue\n\nNo links here."}
	rendered, err = noLinks.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	is := &Issue{
		id:       Id(9997),
		mdMsg:    "# Test",
		docLinks: []HttpLink{"https://docs.example.com"},
	}

	links := is.DocLinks()
	links[0] = "modified"
	if is.DocLinks()[0] != "https://docs.example.com" {
		t.Error("DocLinks() should return a clone")
	}
}

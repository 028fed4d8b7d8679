package bookmarks

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create seed file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `---
- Developer:
    - Github:
        - abbr: GH
          href: https://github.com/
          description: Code hosting
          tags: [code, git]
    - Go:
        - href: https://go.dev
- Videos:
    - YouTube:
        - abbr: YT
          href: {{HOMEPAGE_VAR_YT_URL}}
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config) != 2 {
		t.Fatalf("len(config) = %d, want 2", len(config))
	}

	gh := config[0]["Developer"][0]["Github"][0]
	if gh.Href != "https://github.com/" || gh.Abbr != "GH" || len(gh.Tags) != 2 {
		t.Errorf("Github entry = %+v", gh)
	}
	if yt := config[1]["Videos"][0]["YouTube"][0]; yt.Href != "" {
		t.Errorf("template variable should be stripped, got href %q", yt.Href)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/path/bookmarks.yaml").Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeSeed(t, "- Developer: [unterminated\n")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() with invalid yaml should return error")
	}
}

func TestStripTemplateVariables(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single", input: `href: {{HOMEPAGE_VAR_URL}}`, expected: `href: ""`},
		{name: "multiple", input: `{{A}} and {{B}}`, expected: `"" and ""`},
		{name: "none", input: `href: https://go.dev`, expected: `href: https://go.dev`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(stripTemplateVariables([]byte(tt.input))); got != tt.expected {
				t.Errorf("stripTemplateVariables() = %q, want %q", got, tt.expected)
			}
		})
	}
}

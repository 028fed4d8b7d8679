package assets

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFrontendHasIndex(t *testing.T) {
	data, err := fs.ReadFile(Frontend(), "index.html")
	if err != nil {
		t.Fatalf("ReadFile(index.html) error = %v", err)
	}
	if !strings.Contains(string(data), "<title>tubenotes</title>") {
		t.Error("index.html does not look like the tubenotes frontend")
	}
}

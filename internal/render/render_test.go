package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderWritesTemplateOutput(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "main.html", "<html><body>hello</body></html>")

	r := New(dir)

	var sb strings.Builder
	if err := r.Render(&sb, "main.html"); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got := sb.String(); got != "<html><body>hello</body></html>" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	r := New(t.TempDir())

	var sb strings.Builder
	if err := r.Render(&sb, "main.html"); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if sb.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", sb.String())
	}
}

func TestRenderExecuteFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	// Field access on nil data fails during execution, after some of the
	// document has already been produced.
	writeTemplate(t, dir, "main.html", "<html>{{.Missing.Field}}</html>")

	r := New(dir)

	var sb strings.Builder
	if err := r.Render(&sb, "main.html"); err == nil {
		t.Fatalf("expected error for failing template")
	}
	if sb.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", sb.String())
	}
}

func TestNewDoesNotTouchDirectory(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "does-not-exist"))
	if r.Dir() == "" {
		t.Fatalf("expected directory to be retained")
	}
}

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
)

// Renderer resolves and executes HTML templates from a directory. The
// directory is only referenced at construction; no file is read until a
// render is requested.
type Renderer struct {
	dir string
}

// New creates a Renderer rooted at dir.
func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Dir returns the directory template names are resolved against.
func (r *Renderer) Dir() string {
	return r.dir
}

// Render parses the named template from the renderer's directory and executes
// it with no data, writing the result to w. Output is buffered so a failure
// mid-execution never emits a partial document.
func (r *Renderer) Render(w io.Writer, name string) error {
	tmpl, err := template.ParseFiles(filepath.Join(r.dir, name))
	if err != nil {
		return fmt.Errorf("parse template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return fmt.Errorf("execute template %q: %w", name, err)
	}

	_, err = buf.WriteTo(w)
	return err
}

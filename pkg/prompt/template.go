// Package prompt wraps text/template for file-backed prompt templates.
// Templates are parsed once at construction, render with missingkey=error,
// and expose a content digest so generated output can be traced back to the
// exact template revision that produced it.
package prompt

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

// Template is a parsed prompt template, safe for concurrent rendering.
type Template struct {
	path  string
	funcs template.FuncMap

	mu   sync.RWMutex
	tmpl *template.Template
	hash string
}

// NewTemplate parses the template file at path with the provided function map.
func NewTemplate(path string, funcs template.FuncMap) (*Template, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prompt: template path is empty")
	}
	t := &Template{path: path, funcs: funcs}
	if err := t.reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTemplateFromString parses an inline template body. Reload is a no-op for
// string-sourced templates.
func NewTemplateFromString(name, body string, funcs template.FuncMap) (*Template, error) {
	if strings.TrimSpace(name) == "" {
		name = "inline"
	}
	t := &Template{funcs: funcs}
	if err := t.parse(name, []byte(body)); err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the template with data and returns the rendered prompt.
func (t *Template) Render(data any) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.tmpl == nil {
		return "", fmt.Errorf("prompt: template %q not parsed", t.path)
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("prompt: execute template %q: %w", t.path, err)
	}
	return buf.String(), nil
}

// Reload reparses a file-backed template from disk.
func (t *Template) Reload() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.path == "" {
		return nil
	}
	return t.reload()
}

// Digest returns the sha256 hex digest of the template content.
func (t *Template) Digest() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hash
}

func (t *Template) reload() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return fmt.Errorf("prompt: read template %q: %w", t.path, err)
	}
	return t.parse(filepath.Base(t.path), data)
}

func (t *Template) parse(name string, data []byte) error {
	tmpl := template.New(name).Option("missingkey=error")
	if len(t.funcs) > 0 {
		tmpl = tmpl.Funcs(t.funcs)
	}
	if _, err := tmpl.Parse(string(data)); err != nil {
		return fmt.Errorf("prompt: parse template %q: %w", name, err)
	}
	sum := sha256.Sum256(data)
	t.tmpl = tmpl
	t.hash = hex.EncodeToString(sum[:])
	return nil
}

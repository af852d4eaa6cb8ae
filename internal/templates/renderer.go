package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"
)

// Template delimiters. GitHub Actions workflows use ${{ }} themselves.
const (
	leftDelim  = "[["
	rightDelim = "]]"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// TemplateFile represents a file to be generated from a template.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the project-relative output path.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// RenderTemplate renders all files of a template in memory.
// Nothing is written, so a rendering error leaves no partial output.
func (r *Renderer) RenderTemplate(templateName string) ([]TemplateFile, error) {
	var files []TemplateFile

	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, templateSuffix) {
			return nil
		}

		content, err := fs.ReadFile(TemplateFS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rendered, err := r.RenderFile(path, content)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}

		files = append(files, TemplateFile{
			SourcePath: path,
			TargetPath: targetPath(templateName, path, r.data.ProjectSlug),
			Content:    rendered,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template %s: %w", templateName, err)
	}

	return files, nil
}

// ListTemplateFiles returns the output paths of a template without
// rendering, with the slug segment left unresolved.
func ListTemplateFiles(templateName string) ([]string, error) {
	if _, err := Get(templateName); err != nil {
		return nil, err
	}

	var files []string
	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, templateSuffix) {
			return nil
		}
		files = append(files, targetPath(templateName, path, slugSegment))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateName, err)
	}

	sort.Strings(files)
	return files, nil
}

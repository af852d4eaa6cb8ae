// Package templates provides the embedded project templates and renders them
// into a target directory.
package templates

import (
	"embed"
	"path"
	"strings"
)

// TemplateFS holds every embedded template, one top-level directory per
// template name. The all: prefix keeps dotfiles such as .github.
//
//go:embed all:poetry
var TemplateFS embed.FS

const (
	// templateSuffix is stripped from every output file name.
	templateSuffix = ".tmpl"

	// slugSegment is a path segment replaced by the project slug.
	slugSegment = "__project_slug__"
)

// targetPath maps an embedded path to its project-relative output path.
func targetPath(templateName, embedded, slug string) string {
	rel := strings.TrimPrefix(embedded, templateName+"/")
	rel = strings.TrimSuffix(rel, templateSuffix)

	segments := strings.Split(rel, "/")
	for i, s := range segments {
		if s == slugSegment {
			segments[i] = slug
		}
	}
	return path.Join(segments...)
}

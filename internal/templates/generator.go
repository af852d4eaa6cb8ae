package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
)

// Generator handles project generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate renders the template into the target directory.
//
// When the target directory did not exist beforehand and writing fails, the
// directory is removed again.
func (g *Generator) Generate() (result *GenerateResult, err error) {
	tmpl, err := Get(g.opts.TemplateName)
	if err != nil {
		return nil, err
	}

	if err := g.opts.Answers.Validate(); err != nil {
		return nil, err
	}

	existed, err := g.checkTargetDir()
	if err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"name", g.opts.Answers.Project.Name,
		"slug", g.opts.Answers.Project.Slug,
		"target", g.opts.TargetDir)

	renderer := NewRenderer(NewTemplateData(g.opts.Answers))
	files, err := renderer.RenderTemplate(tmpl.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	if !existed {
		defer func() {
			if err != nil {
				if rmErr := os.RemoveAll(g.opts.TargetDir); rmErr != nil {
					output.Warn("could not clean up partial project", "dir", g.opts.TargetDir, "err", rmErr)
				}
			}
		}()
	}

	createdFiles := make([]string, 0, len(files))
	for _, f := range files {
		target := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.TargetPath))

		parentDir := filepath.Dir(target)
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return nil, wrapWriteErr("creating directory", parentDir, err)
		}

		if err := os.WriteFile(target, f.Content, fileMode(f.TargetPath)); err != nil {
			return nil, wrapWriteErr("writing", target, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	return &GenerateResult{
		Files:        createdFiles,
		TemplateName: tmpl.Name,
		TargetDir:    g.opts.TargetDir,
	}, nil
}

// checkTargetDir validates the target directory and reports whether it
// already existed.
func (g *Generator) checkTargetDir() (bool, error) {
	info, err := os.Stat(g.opts.TargetDir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return true, oerrors.NewValidationError("target is not a directory", g.opts.TargetDir, "", "")
	}

	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		return true, fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return true, oerrors.NewValidationError("directory is not empty", g.opts.TargetDir, "force",
			"Use --force to overwrite existing files.")
	}

	return true, nil
}

// fileMode marks shell scripts executable.
func fileMode(path string) os.FileMode {
	if strings.HasSuffix(path, ".sh") {
		return 0o755
	}
	return 0o644
}

func wrapWriteErr(action, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(action+" "+path+" denied", path, "Check the permissions of the output directory.")
	}
	return fmt.Errorf("%s %s: %w", action, path, err)
}

// Package bake generates a project from a template and prunes it according
// to the answers.
package bake

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/opmodel/skel/internal/answers"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/prune"
	"github.com/opmodel/skel/internal/templates"
)

// Options configures a bake.
type Options struct {
	// Template is the registered template name.
	Template string

	// OutputDir is the parent directory of the project.
	OutputDir string

	// Answers is the resolved answer set.
	Answers answers.Set

	// Force allows generating into a non-empty project directory.
	Force bool

	// ReplayDir, when set, receives the answers of a successful bake.
	ReplayDir string
}

// Result describes a finished bake.
type Result struct {
	// ProjectDir is <OutputDir>/<project_name>.
	ProjectDir string

	Template string

	// Created lists the files the template rendered, before pruning.
	Created []string

	// Pruned is the outcome of the prune step.
	Pruned *prune.Result

	// Files lists the files left in the project, sorted.
	Files []string

	// ReplayFile is the path the answers were saved to, if any.
	ReplayFile string
}

// ReplayPath returns the replay file location for a template.
func ReplayPath(dir, template string) string {
	return filepath.Join(dir, template+".yaml")
}

// Run renders the template into a new project directory, prunes it, and
// saves the answers for replay.
//
// A rendering failure leaves no project directory behind. A pruning failure
// leaves the tree as it is and returns the partial result with the error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Answers.Validate(); err != nil {
		return nil, err
	}
	if opts.Template == "" {
		opts.Template = templates.DefaultTemplateName
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	result := &Result{
		ProjectDir: filepath.Join(opts.OutputDir, opts.Answers.Project.Name),
		Template:   opts.Template,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := output.ProjectLogger(opts.Answers.Project.Name)
	log.Debug("baking", "template", opts.Template, "dir", result.ProjectDir, "answers", opts.Answers.String())

	gen, err := templates.NewGenerator(templates.GenerateOptions{
		TargetDir:    result.ProjectDir,
		TemplateName: opts.Template,
		Answers:      opts.Answers,
		Force:        opts.Force,
	}).Generate()
	if err != nil {
		return nil, err
	}
	result.Created = gen.Files

	if err := ctx.Err(); err != nil {
		return result, err
	}

	pruned, err := prune.Prune(opts.Answers, result.ProjectDir)
	result.Pruned = pruned
	if err != nil {
		return result, fmt.Errorf("pruning %s: %w", result.ProjectDir, err)
	}
	log.Debug("pruned", "removed", len(pruned.Removed), "missing", len(pruned.Missing))

	files, err := ListFiles(result.ProjectDir)
	if err != nil {
		return result, err
	}
	result.Files = files

	if opts.ReplayDir != "" {
		path := ReplayPath(opts.ReplayDir, opts.Template)
		if err := answers.SaveFile(path, opts.Answers); err != nil {
			return result, fmt.Errorf("saving replay file: %w", err)
		}
		result.ReplayFile = path
		log.Debug("saved replay", "path", path)
	}

	return result, nil
}

// ListFiles returns the slash-separated paths of all regular files under
// root, sorted.
func ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

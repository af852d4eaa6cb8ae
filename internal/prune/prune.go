package prune

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opmodel/skel/internal/answers"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
)

// FS is the file system surface the pruner needs.
type FS interface {
	Lstat(name string) (fs.FileInfo, error)
	Remove(name string) error
	RemoveAll(path string) error
}

type osFS struct{}

func (osFS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }
func (osFS) Remove(name string) error               { return os.Remove(name) }
func (osFS) RemoveAll(path string) error            { return os.RemoveAll(path) }

// Result records what a prune run did, in plan order.
type Result struct {
	// Removed lists targets that existed and were deleted.
	Removed []string
	// Missing lists targets that were already absent.
	Missing []string
}

// RemovalError reports a target that exists but could not be removed.
type RemovalError struct {
	Rule string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *RemovalError) Error() string {
	return fmt.Sprintf("removing %s (rule %s): %v", e.Path, e.Rule, e.Err)
}

// Unwrap exposes the cause and, for permission failures, ErrPermission.
func (e *RemovalError) Unwrap() []error {
	if errors.Is(e.Err, fs.ErrPermission) {
		return []error{e.Err, oerrors.ErrPermission}
	}
	return []error{e.Err}
}

// Option configures a Pruner.
type Option func(*Pruner)

// WithFS replaces the file system implementation.
func WithFS(fsys FS) Option {
	return func(p *Pruner) {
		p.fs = fsys
	}
}

// Pruner deletes the targets an answer set excludes.
type Pruner struct {
	fs FS
}

// New creates a Pruner backed by the OS file system unless overridden.
func New(opts ...Option) *Pruner {
	p := &Pruner{fs: osFS{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prune removes the targets of Plan(s) under root with the OS file system.
func Prune(s answers.Set, root string) (*Result, error) {
	return New().Prune(s, root)
}

// Prune validates s, then removes every planned target under root.
//
// Absent targets count as success, so running Prune again with the same
// answers is a no-op. The first removal failure aborts the run; targets
// already removed stay removed.
func (p *Pruner) Prune(s answers.Set, root string) (*Result, error) {
	if err := s.ValidateOptions(); err != nil {
		return nil, err
	}

	info, err := p.fs.Lstat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError("project directory does not exist", root,
				"Generate the project first, or pass the directory that contains it.")
		}
		return nil, fmt.Errorf("checking project directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("project root is not a directory", root, "", "")
	}

	result := &Result{}
	for _, t := range Plan(s) {
		removed, err := p.remove(root, t)
		if err != nil {
			return result, err
		}
		if removed {
			output.Debug("removed", "path", t.Path, "kind", t.Kind, "rule", t.Rule)
			result.Removed = append(result.Removed, t.Path)
		} else {
			output.Debug("already absent", "path", t.Path, "rule", t.Rule)
			result.Missing = append(result.Missing, t.Path)
		}
	}
	return result, nil
}

// remove deletes one target. It reports false when the target was absent.
func (p *Pruner) remove(root string, t Target) (bool, error) {
	rel := filepath.FromSlash(t.Path)
	if !filepath.IsLocal(rel) {
		return false, &RemovalError{Rule: t.Rule, Path: t.Path, Err: fmt.Errorf("path escapes project root")}
	}
	full := filepath.Join(root, rel)

	if _, err := p.fs.Lstat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &RemovalError{Rule: t.Rule, Path: t.Path, Err: err}
	}

	var err error
	if t.Kind == Dir {
		err = p.fs.RemoveAll(full)
	} else {
		err = p.fs.Remove(full)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &RemovalError{Rule: t.Rule, Path: t.Path, Err: err}
	}
	return true, nil
}

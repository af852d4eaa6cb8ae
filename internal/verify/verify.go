// Package verify checks a generated project tree against the expectations
// implied by an answer set.
package verify

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gonvenience/ytbx"
	"github.com/hashicorp/go-multierror"

	oerrors "github.com/opmodel/skel/internal/errors"
)

// FileExists reports whether path is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileContainsText reports whether the file at path contains text.
// A missing file is an error, not a false result.
func FileContainsText(path, text string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Contains(data, []byte(text)), nil
}

// IsValidYAML returns nil when path is a regular file holding one or more
// well-formed YAML documents.
func IsValidYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if _, err := ytbx.LoadYAMLDocuments(data); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}

// Check is one named assertion about a project tree.
type Check struct {
	// Name describes the expectation for reports.
	Name string

	// Path is the slash-separated project-relative path the check inspects.
	Path string

	// Run returns nil when the expectation holds for the tree at root.
	Run func(root string) error
}

// Failure reports one unmet expectation.
type Failure struct {
	Check string
	Path  string
	Err   error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.Check, f.Path, f.Err)
}

// Unwrap returns the cause.
func (f *Failure) Unwrap() error { return f.Err }

// Report is the outcome of running a list of checks.
type Report struct {
	Passed []Check
	Failed []*Failure
}

// Err aggregates the failures, or returns nil when every check passed.
// The aggregate wraps ErrValidation.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, f := range r.Failed {
		merr = multierror.Append(merr, f)
	}
	merr.ErrorFormat = formatFailures
	return fmt.Errorf("%d of %d checks failed: %w: %w",
		len(r.Failed), len(r.Failed)+len(r.Passed), oerrors.ErrValidation, merr)
}

// Evaluate runs every check against root.
func Evaluate(root string, checks []Check) *Report {
	report := &Report{}
	for _, c := range checks {
		if err := c.Run(root); err != nil {
			report.Failed = append(report.Failed, &Failure{Check: c.Name, Path: c.Path, Err: err})
			continue
		}
		report.Passed = append(report.Passed, c)
	}
	return report
}

// Run runs every check against root and returns the aggregated failures.
// All checks run even after one fails.
func Run(root string, checks []Check) error {
	if !DirExists(root) {
		return oerrors.NewNotFoundError("project directory does not exist", root, "")
	}
	return Evaluate(root, checks).Err()
}

func formatFailures(errs []error) string {
	var b bytes.Buffer
	for _, err := range errs {
		fmt.Fprintf(&b, "\n  * %v", err)
	}
	return b.String()
}

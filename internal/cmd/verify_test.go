package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/skel/internal/errors"
)

func TestNewVerifyCmd(t *testing.T) {
	c := NewVerifyCmd(testConfig(t))

	assert.Equal(t, "verify <dir>", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("replay"))
}

func TestVerify_Passes(t *testing.T) {
	dir := bakeFull(t, "demo")

	out := mustExecute(t, NewVerifyCmd(testConfig(t)), dir)
	assert.Contains(t, out, "checks passed")
	assert.Contains(t, out, "pyproject.toml")
}

func TestVerify_AfterNew(t *testing.T) {
	cfg := testConfig(t)
	outDir := t.TempDir()
	mustExecute(t, NewNewCmd(cfg), "tidy", "--no-input", "-o", outDir,
		"-s", "publish_to=none", "-s", "mkdocs=n", "-s", "codecov=n")

	out := mustExecute(t, NewVerifyCmd(cfg), filepath.Join(outDir, "tidy"), "--replay")
	assert.Contains(t, out, "checks passed")
}

func TestVerify_FailuresAreReported(t *testing.T) {
	dir := bakeFull(t, "demo")

	// The tree still has docs/, so expecting mkdocs=n fails.
	out, err := execute(t, NewVerifyCmd(testConfig(t)), dir, "-s", "mkdocs=n")
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	assert.Contains(t, out, "docs")
	assert.Contains(t, out, "mkdocs.yml")
	assert.Contains(t, out, "checks failed")
}

func TestVerify_BrokenYAML(t *testing.T) {
	dir := bakeFull(t, "demo")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "workflows", "main.yml"),
		[]byte("jobs: [unclosed\n"), 0o644))

	_, err := execute(t, NewVerifyCmd(testConfig(t)), dir)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestVerify_MissingDirectory(t *testing.T) {
	_, err := execute(t, NewVerifyCmd(testConfig(t)), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

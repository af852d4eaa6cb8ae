package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/skel/internal/answers"
	"github.com/opmodel/skel/internal/bake"
	oerrors "github.com/opmodel/skel/internal/errors"
)

// bakeFull generates a project with every feature enabled.
func bakeFull(t *testing.T, name string) string {
	t.Helper()
	result, err := bake.Run(context.Background(), bake.Options{
		OutputDir: t.TempDir(),
		Answers:   answers.MustWithDefaults(map[string]string{"project_name": name}),
	})
	require.NoError(t, err)
	return result.ProjectDir
}

func TestNewPruneCmd(t *testing.T) {
	c := NewPruneCmd(testConfig(t))

	assert.Equal(t, "prune <dir>", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotNil(t, c.Flags().Lookup("set"))
	assert.Nil(t, c.Flags().Lookup("no-input"), "prune never prompts")
}

func TestPrune_RemovesAndReports(t *testing.T) {
	dir := bakeFull(t, "demo")

	out := mustExecute(t, NewPruneCmd(testConfig(t)), dir,
		"-s", "include_github_actions=n", "-s", "devcontainer=n")

	assert.NoDirExists(t, filepath.Join(dir, ".github"))
	assert.NoDirExists(t, filepath.Join(dir, ".devcontainer"))
	assert.FileExists(t, filepath.Join(dir, "Dockerfile"))
	assert.Contains(t, out, ".github")
	assert.Contains(t, out, ".devcontainer")
	assert.Contains(t, out, "2 removed")

	// Same answers again: nothing left to do.
	out = mustExecute(t, NewPruneCmd(testConfig(t)), dir,
		"-s", "include_github_actions=n", "-s", "devcontainer=n")
	assert.Contains(t, out, "0 removed")
	assert.Contains(t, out, "missing")
}

func TestPrune_Replay(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, answers.SaveFile(bake.ReplayPath(cfg.ReplayDir, "poetry"),
		answers.MustWithDefaults(map[string]string{"dockerfile": "n"})))

	dir := bakeFull(t, "demo")
	mustExecute(t, NewPruneCmd(cfg), dir, "--replay")

	assert.NoFileExists(t, filepath.Join(dir, "Dockerfile"))
}

func TestPrune_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing directory", []string{filepath.Join(t.TempDir(), "nope")}, oerrors.ExitNotFound},
		{"not a directory", []string{file}, oerrors.ExitValidationError},
		{"invalid answer", []string{t.TempDir(), "-s", "publish_to=npm"}, oerrors.ExitValidationError},
		{"no argument", nil, oerrors.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, NewPruneCmd(testConfig(t)), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestProjectNameFromDir(t *testing.T) {
	parent := t.TempDir()

	assert.Equal(t, "my-project", projectNameFromDir(filepath.Join(parent, "my-project")))
	assert.Equal(t, "", projectNameFromDir(filepath.Join(parent, "1st")))
	assert.Equal(t, "", projectNameFromDir(filepath.Join(parent, "has space")))
	assert.Equal(t, "", projectNameFromDir(filepath.Join(parent, "café-proj")))
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
)

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(testConfig(t))

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConfigPath = filepath.Join(t.TempDir(), "nested", "config.yaml")

	out := mustExecute(t, NewConfigInitCmd(cfg))
	assert.Contains(t, out, cfg.ConfigPath)

	content, err := os.ReadFile(cfg.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "defaultContext")
	assert.Contains(t, string(content), "replayDir")

	// The generated file loads and validates.
	require.NoError(t, config.ValidateFile(cfg.ConfigPath))
	loaded, err := config.NewLoader().Load(cfg.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().DefaultContext, loaded.DefaultContext)
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	cfg := testConfig(t)
	cfg.ConfigPath = filepath.Join(t.TempDir(), ".skel", "config.yaml")

	mustExecute(t, NewConfigInitCmd(cfg))

	dirInfo, err := os.Stat(filepath.Dir(cfg.ConfigPath))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(cfg.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.ConfigPath, []byte("# old config\n"), 0o600))

	_, err := execute(t, NewConfigInitCmd(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	mustExecute(t, NewConfigInitCmd(cfg), "--force")
	content, err := os.ReadFile(cfg.ConfigPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "old config")
}

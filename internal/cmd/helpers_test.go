package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/skel/internal/config"
)

func testConfig(t *testing.T) *config.GlobalConfig {
	t.Helper()
	return &config.GlobalConfig{
		Config:     &config.Config{},
		ConfigPath: t.TempDir() + "/config.yaml",
		ReplayDir:  t.TempDir(),
	}
}

// execute runs c with args and returns what it wrote to stdout.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.Execute()
	return out.String(), err
}

// mustExecute is execute for commands that are expected to succeed.
func mustExecute(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	out, err := execute(t, c, args...)
	require.NoError(t, err)
	return out
}

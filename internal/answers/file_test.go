package answers

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	values, err := ParseYAML([]byte(`
project_name: my-project
mkdocs: n
publish_to: artifactory
codecov: false
`))
	require.NoError(t, err)
	assert.Equal(t, "my-project", values["project_name"])
	assert.Equal(t, "n", values["mkdocs"])
	assert.Equal(t, "artifactory", values["publish_to"])
	assert.Equal(t, "false", values["codecov"])

	s, err := WithDefaults(values)
	require.NoError(t, err)
	assert.Equal(t, No, s.Codecov)
}

func TestParseYAML_Empty(t *testing.T) {
	values, err := ParseYAML([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParseYAML_NotAMapping(t *testing.T) {
	_, err := ParseYAML([]byte("- a\n- b\n"))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay", "poetry.yaml")
	s := MustWithDefaults(map[string]string{"project_name": "replayed", "dockerfile": "n"})

	require.NoError(t, SaveFile(path, s))

	values, err := LoadFile(path)
	require.NoError(t, err)

	loaded, err := FromMap(values)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestParseAssignments(t *testing.T) {
	values, err := ParseAssignments([]string{"mkdocs=n", "project_description=a=b", "author="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"mkdocs":              "n",
		"project_description": "a=b",
		"author":              "",
	}, values)

	_, err = ParseAssignments([]string{"mkdocs"})
	assert.ErrorContains(t, err, "expected key=value")

	_, err = ParseAssignments([]string{"=y"})
	assert.Error(t, err)
}

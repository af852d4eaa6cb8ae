package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/skel/internal/answers"
	"github.com/opmodel/skel/internal/bake"
)

func TestResolveAnswers_Layers(t *testing.T) {
	cfg := testConfig(t)
	cfg.Config.DefaultContext = map[string]string{
		"author":     "Config Author",
		"codecov":    "n",
		"dockerfile": "n",
		"mkdocs":     "n",
	}
	require.NoError(t, answers.SaveFile(bake.ReplayPath(cfg.ReplayDir, "poetry"),
		answers.MustWithDefaults(map[string]string{
			"project_name": "recorded",
			"dockerfile":   "y",
			"mkdocs":       "y",
			"publish_to":   "artifactory",
		})))

	file := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(file, []byte("mkdocs: n\npublish_to: none\n"), 0o644))

	s, err := resolveAnswers(cfg, answerRequest{
		flags: answerFlags{
			replay: true,
			file:   file,
			set:    []string{"publish_to=pypi"},
		},
		template:  "poetry",
		forceName: "chosen",
	})
	require.NoError(t, err)

	assert.Equal(t, "chosen", s.Project.Name)
	assert.Equal(t, "chosen", s.Project.Slug, "slug follows the new name, not the recorded one")
	assert.Equal(t, answers.Yes, s.Dockerfile, "replay beats config")
	assert.Equal(t, answers.No, s.MkDocs, "answers file beats replay")
	assert.Equal(t, answers.PublishPyPI, s.PublishTo, "--set beats answers file")
	assert.Equal(t, answers.Yes, s.Codecov, "replay records every answer")
}

func TestResolveAnswers_ConfigDefaults(t *testing.T) {
	cfg := testConfig(t)
	cfg.Config.DefaultContext = map[string]string{"author": "Config Author", "codecov": "n"}

	s, err := resolveAnswers(cfg, answerRequest{projectName: "from-dir"})
	require.NoError(t, err)

	assert.Equal(t, "from-dir", s.Project.Name)
	assert.Equal(t, "from_dir", s.Project.Slug)
	assert.Equal(t, "Config Author", s.Project.Author)
	assert.Equal(t, answers.No, s.Codecov)
}

func TestResolveAnswers_SetBeatsDirectoryName(t *testing.T) {
	s, err := resolveAnswers(testConfig(t), answerRequest{
		flags:       answerFlags{set: []string{"project_name=explicit"}},
		projectName: "from-dir",
	})
	require.NoError(t, err)
	assert.Equal(t, "explicit", s.Project.Name)
}

func TestResolveAnswers_NilConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Config = nil

	s, err := resolveAnswers(cfg, answerRequest{})
	require.NoError(t, err)
	assert.Equal(t, "example-project", s.Project.Name)
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultPath := filepath.Join(home, ".skel", "config.yaml")

	tests := []struct {
		name         string
		flag         string
		env          string
		wantPath     string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name:         "flag wins",
			flag:         "/flag/config.yaml",
			env:          "/env/config.yaml",
			wantPath:     "/flag/config.yaml",
			wantSource:   SourceFlag,
			wantShadowed: map[ConfigSource]string{SourceEnv: "/env/config.yaml", SourceDefault: defaultPath},
		},
		{
			name:         "env over default",
			env:          "/env/config.yaml",
			wantPath:     "/env/config.yaml",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{SourceDefault: defaultPath},
		},
		{
			name:         "default",
			wantPath:     defaultPath,
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SKEL_CONFIG", tt.env)

			result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: tt.flag})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, result.ConfigPath)
			assert.Equal(t, tt.wantSource, result.Source)
			assert.Equal(t, tt.wantShadowed, result.Shadowed)
		})
	}
}

func TestResolveReplayDir(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		config       string
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]any
	}{
		{
			name:         "env wins",
			env:          "/env/replay",
			config:       "/config/replay",
			wantValue:    "/env/replay",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]any{SourceConfig: "/config/replay", SourceDefault: defaultReplayDir},
		},
		{
			name:         "env bound into config is not shadowed",
			env:          "/env/replay",
			config:       "/env/replay",
			wantValue:    "/env/replay",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]any{SourceDefault: defaultReplayDir},
		},
		{
			name:         "config over default",
			config:       "/config/replay",
			wantValue:    "/config/replay",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]any{SourceDefault: defaultReplayDir},
		},
		{
			name:         "default",
			wantValue:    defaultReplayDir,
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SKEL_REPLAY_DIR", tt.env)

			result, err := ResolveReplayDir(ResolveReplayDirOptions{ConfigValue: tt.config})
			require.NoError(t, err)

			assert.Equal(t, "replayDir", result.Key)
			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantSource, result.Source)
			assert.Equal(t, tt.wantShadowed, result.Shadowed)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", home},
		{"~/.skel/replay", filepath.Join(home, ".skel", "replay")},
		{"~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the skel configuration file, ~/.skel/config.yaml by
// default.
type Config struct {
	// DefaultContext overrides the built-in answer defaults, keyed by
	// answer name (e.g. author, publish_to).
	DefaultContext map[string]string `json:"defaultContext,omitempty"`

	// ReplayDir is where the answers of each bake are saved.
	// Env: SKEL_REPLAY_DIR, Default: ~/.skel/replay
	ReplayDir string `json:"replayDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `skel config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		DefaultContext: map[string]string{
			"author":               "Jane Doe",
			"email":                "jane.doe@example.com",
			"author_github_handle": "janedoe",
		},
		ReplayDir: defaultReplayDir,
		Log: LogConfig{
			Timestamps: boolPtr(true),
		},
	}
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file; defaults when no file exists.
	Config *Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ReplayDir is the resolved, expanded replay directory.
	ReplayDir string

	Verbose bool

	// LoadErr is the error from loading the config file, if any. Commands
	// that read the config report it; config init and vet do not.
	LoadErr error
}

// ResolvedValue records one configuration value and where it came from.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

func boolPtr(b bool) *bool {
	return &b
}

package config

import (
	"os"

	"github.com/opmodel/skel/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SKEL_CONFIG env, (3) ~/.skel/config.yaml default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("SKEL_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveReplayDirOptions contains options for replay directory resolution.
type ResolveReplayDirOptions struct {
	// ConfigValue is the replayDir value from the config file.
	ConfigValue string
}

// ResolveReplayDir resolves the replay directory using precedence:
// (1) SKEL_REPLAY_DIR env, (2) config.replayDir, (3) ~/.skel/replay.
//
// The loader binds SKEL_REPLAY_DIR as well, so when both are set the config
// value already equals the env value; it is not reported as shadowed then.
func ResolveReplayDir(opts ResolveReplayDirOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "replayDir",
		Shadowed: make(map[ConfigSource]any),
	}

	envValue := os.Getenv("SKEL_REPLAY_DIR")

	switch {
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if opts.ConfigValue != "" && opts.ConfigValue != envValue {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
		result.Shadowed[SourceDefault] = defaultReplayDir
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
		result.Shadowed[SourceDefault] = defaultReplayDir
	default:
		result.Value = defaultReplayDir
		result.Source = SourceDefault
	}

	return result, nil
}

func configPathValue(r ResolveConfigPathResult) ResolvedValue {
	shadowed := make(map[ConfigSource]any, len(r.Shadowed))
	for k, v := range r.Shadowed {
		shadowed[k] = v
	}
	return ResolvedValue{Key: "config", Value: r.ConfigPath, Source: r.Source, Shadowed: shadowed}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

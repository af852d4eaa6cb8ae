package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
)

// Environment variable prefix for skel configuration.
const envPrefix = "SKEL"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("replayDir", "SKEL_REPLAY_DIR")
	_ = v.BindEnv("log.timestamps", "SKEL_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// A missing file is not an error; environment variables still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, &oerrors.DetailError{
				Type:     "invalid config",
				Message:  err.Error(),
				Location: expandedPath,
				Hint:     "Run 'skel config vet' for details, or 'skel config init --force' to start over.",
				Cause:    oerrors.ErrValidation,
			}
		}
		output.Debug("no config file", "path", expandedPath)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoaderOptions configures LoadGlobalConfig.
type LoaderOptions struct {
	// ConfigFlag is the raw --config flag value.
	ConfigFlag string
	Verbose    bool
}

// LoadGlobalConfig resolves the config path, loads and validates the file,
// and resolves the replay directory.
func LoadGlobalConfig(opts LoaderOptions) (*GlobalConfig, error) {
	configPath, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	cfg, err := NewLoader().Load(configPath.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid config",
			Message:  err.Error(),
			Location: configPath.ConfigPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	replayDir, err := ResolveReplayDir(ResolveReplayDirOptions{ConfigValue: cfg.ReplayDir})
	if err != nil {
		return nil, err
	}

	expandedReplay, err := ExpandPath(replayDir.Value.(string))
	if err != nil {
		return nil, fmt.Errorf("expanding replay dir: %w", err)
	}

	if opts.Verbose {
		LogResolvedValues([]ResolvedValue{configPathValue(configPath), replayDir})
	}

	return &GlobalConfig{
		Config:     cfg,
		ConfigPath: configPath.ConfigPath,
		ReplayDir:  expandedReplay,
		Verbose:    opts.Verbose,
	}, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

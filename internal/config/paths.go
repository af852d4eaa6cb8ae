package config

import (
	"os"
	"path/filepath"
)

const defaultReplayDir = "~/.skel/replay"

// Paths contains standard filesystem paths for skel.
type Paths struct {
	// ConfigFile is the path to the config file (~/.skel/config.yaml).
	ConfigFile string

	// ReplayDir is the path to the replay directory (~/.skel/replay).
	ReplayDir string

	// HomeDir is the skel home directory (~/.skel).
	HomeDir string
}

// DefaultPaths returns the default paths for skel.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	skelHome := filepath.Join(homeDir, ".skel")

	return &Paths{
		ConfigFile: filepath.Join(skelHome, "config.yaml"),
		ReplayDir:  filepath.Join(skelHome, "replay"),
		HomeDir:    skelHome,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}

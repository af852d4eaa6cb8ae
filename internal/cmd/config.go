package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the skel CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configFilePath returns the expanded config path resolved at startup,
// falling back to the default location.
func configFilePath(cfg *config.GlobalConfig) (string, error) {
	path := cfg.ConfigPath
	if path == "" {
		res, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{})
		if err != nil {
			return "", err
		}
		path = res.ConfigPath
	}
	return config.ExpandPath(path)
}

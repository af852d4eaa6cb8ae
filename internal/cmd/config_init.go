package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
)

const configHeader = "# skel configuration\n# defaultContext values replace the built-in answer defaults.\n\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the skel configuration file.

Creates ~/.skel/config.yaml, or the path given by --config or SKEL_CONFIG,
with default values for:
  - defaultContext: answer defaults (author, email, GitHub handle)
  - replayDir: where the answers of each bake are saved
  - log.timestamps: timestamp display in log output

Examples:
  # Initialize configuration
  skel config init

  # Overwrite existing configuration
  skel config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return oerrors.Exit(runConfigInit(c.OutOrStdout(), cfg, forceFlag))
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(w io.Writer, cfg *config.GlobalConfig, force bool) error {
	path, err := configFilePath(cfg)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine config path")
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewPermissionError("could not create config directory", filepath.Dir(path), "")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.NewPermissionError("could not write config file", path, "")
	}

	output.Debug("wrote config", "path", path, "overwritten", exists)
	fmt.Fprintln(w, output.FormatCheckmark("Configuration initialized at "+path))
	fmt.Fprintln(w, "Validate with: skel config vet")
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the skel configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. defaultContext keys and values are known answers
  4. replayDir is not blank

The config path is resolved using precedence:
  --config flag > SKEL_CONFIG env > ~/.skel/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return oerrors.Exit(runConfigVet(c.OutOrStdout(), cfg))
		},
	}
}

func runConfigVet(w io.Writer, cfg *config.GlobalConfig) error {
	path, err := configFilePath(cfg)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'skel config init' to create default configuration.")
	}

	if err := config.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(w, output.FormatCross("Configuration is invalid: "+path))
			for _, e := range verrs {
				fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
		}
		return err
	}

	fmt.Fprintln(w, output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}

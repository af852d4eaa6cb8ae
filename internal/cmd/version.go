package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
	"github.com/opmodel/skel/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show skel version information.

Displays the CLI version, commit, build date, and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/prune"
	"github.com/opmodel/skel/internal/templates"
)

// NewPruneCmd creates the prune command.
func NewPruneCmd(cfg *config.GlobalConfig) *cobra.Command {
	var af answerFlags

	c := &cobra.Command{
		Use:   "prune <dir>",
		Short: "Remove template paths excluded by the answers",
		Long: `Remove the files and directories of a generated project that the
answers exclude.

The project name defaults to the directory name. Targets that are already
absent are reported as missing and are not an error, so pruning twice with
the same answers changes nothing.

Examples:
  # Remove CI and docs from an existing project
  skel prune ./my-project -s include_github_actions=n -s mkdocs=n

  # Apply the answers recorded by the last 'skel new'
  skel prune ./my-project --replay`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPrune(c.OutOrStdout(), cfg, args[0], af)
		},
	}

	af.register(c, false)

	return c
}

func runPrune(w io.Writer, cfg *config.GlobalConfig, dir string, af answerFlags) error {
	if err := requireConfig(cfg); err != nil {
		return oerrors.Exit(err)
	}
	if err := dirMustExist(dir); err != nil {
		return oerrors.Exit(err)
	}

	set, err := resolveAnswers(cfg, answerRequest{
		flags:       af,
		template:    templates.DefaultTemplateName,
		projectName: projectNameFromDir(dir),
	})
	if err != nil {
		return oerrors.Exit(err)
	}
	output.Debug("pruning", "dir", dir, "answers", set.String())

	result, err := prune.Prune(set, dir)
	if result != nil {
		writePruneResult(w, result, true)
	}
	if err != nil {
		return oerrors.Exit(err)
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Pruned %s: %d removed, %d already absent",
		dir, len(result.Removed), len(result.Missing))))
	return nil
}

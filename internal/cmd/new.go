package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/bake"
	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/prune"
	"github.com/opmodel/skel/internal/templates"
)

// NewNewCmd creates the new command.
func NewNewCmd(cfg *config.GlobalConfig) *cobra.Command {
	var (
		templateFlag  string
		outputDirFlag string
		forceFlag     bool
		af            answerFlags
	)

	c := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new project from a template",
		Long: `Generate a new project from a template.

Answers are collected, lowest precedence first, from the defaultContext
section of the config file, the replay file (--replay), an answers file
(--answers), --set flags, and the project-name argument. Questions that
are still unanswered are prompted for on a terminal, unless --no-input
or --replay is given, in which case defaults are used.

After rendering, files belonging to features that were answered "n" are
removed from the project. The answers are saved so the next run can use
--replay.

Examples:
  # Interactive
  skel new

  # Non-interactive, no CI, publish to PyPI
  skel new my-project --no-input -s include_github_actions=n -s publish_to=pypi

  # From an answers file into ./projects/my-project
  skel new my-project -a answers.yaml -o projects`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return runNew(c.Context(), c.OutOrStdout(), cfg, newOptions{
				name:      name,
				template:  templateFlag,
				outputDir: outputDirFlag,
				force:     forceFlag,
				answers:   af,
			})
		},
	}

	c.Flags().StringVarP(&templateFlag, "template", "t", templates.DefaultTemplateName,
		"Template to generate from")
	c.Flags().StringVarP(&outputDirFlag, "output-dir", "o", ".",
		"Directory to create the project in")
	c.Flags().BoolVar(&forceFlag, "force", false,
		"Generate into an existing non-empty project directory")
	af.register(c, true)

	return c
}

type newOptions struct {
	name      string
	template  string
	outputDir string
	force     bool
	answers   answerFlags
}

func runNew(ctx context.Context, w io.Writer, cfg *config.GlobalConfig, opts newOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := requireConfig(cfg); err != nil {
		return oerrors.Exit(err)
	}
	if err := checkTemplate(opts.template); err != nil {
		return oerrors.Exit(err)
	}

	set, err := resolveAnswers(cfg, answerRequest{
		flags:     opts.answers,
		template:  opts.template,
		forceName: opts.name,
		prompt:    true,
	})
	if err != nil {
		return oerrors.Exit(err)
	}

	var result *bake.Result
	err = output.RunWithSpinner(ctx, func() error {
		var bakeErr error
		result, bakeErr = bake.Run(ctx, bake.Options{
			Template:  opts.template,
			OutputDir: opts.outputDir,
			Answers:   set,
			Force:     opts.force,
			ReplayDir: cfg.ReplayDir,
		})
		return bakeErr
	}, output.WithTitle(fmt.Sprintf("Generating %s", set.Project.Name)))

	if result != nil && result.Pruned != nil {
		writePruneResult(w, result.Pruned, false)
	}
	if err != nil {
		return oerrors.Exit(err)
	}

	fmt.Fprintln(w, output.RenderSimpleTree(set.Project.Name, result.Files))
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Project %s created in %s",
		output.StyleNoun.Render(set.Project.Name), result.ProjectDir)))
	if result.ReplayFile != "" {
		output.Debug("answers saved", "path", result.ReplayFile)
	}
	return nil
}

// writePruneResult lists the paths a prune removed and, if missing is set,
// the ones that were already absent.
func writePruneResult(w io.Writer, r *prune.Result, missing bool) {
	for _, p := range r.Removed {
		fmt.Fprintln(w, output.FormatPathLine(p, output.StatusRemoved))
	}
	if !missing {
		return
	}
	for _, p := range r.Missing {
		fmt.Fprintln(w, output.FormatPathLine(p, output.StatusMissing))
	}
}

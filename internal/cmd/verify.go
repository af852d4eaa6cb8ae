package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/templates"
	"github.com/opmodel/skel/internal/verify"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd(cfg *config.GlobalConfig) *cobra.Command {
	var af answerFlags

	c := &cobra.Command{
		Use:   "verify <dir>",
		Short: "Check a generated project against its answers",
		Long: `Check that a generated project contains exactly what its answers ask for.

Every check runs, even after a failure. The command exits with code 2 when
any check fails. The project name defaults to the directory name.

Examples:
  # Verify a project generated with the recorded answers
  skel verify ./my-project --replay

  # Verify against explicit answers
  skel verify ./my-project -s mkdocs=n -s publish_to=none`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVerify(c.OutOrStdout(), cfg, args[0], af)
		},
	}

	af.register(c, false)

	return c
}

func runVerify(w io.Writer, cfg *config.GlobalConfig, dir string, af answerFlags) error {
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

	report := verify.Evaluate(dir, verify.Expectations(set))
	for _, c := range report.Passed {
		fmt.Fprintln(w, output.FormatCheck(c.Path, c.Name))
	}
	for _, f := range report.Failed {
		fmt.Fprintln(w, output.FormatCross(fmt.Sprintf("%s: %s %s", f.Path, f.Check, output.StyleDim.Render("("+f.Err.Error()+")"))))
	}

	if err := report.Err(); err != nil {
		fmt.Fprintln(w, output.FormatCross(fmt.Sprintf("%d of %d checks failed",
			len(report.Failed), len(report.Failed)+len(report.Passed))))
		return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%d checks passed", len(report.Passed))))
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(_ *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect the embedded templates",
	}

	c.AddCommand(newTemplateListCmd())
	c.AddCommand(newTemplateShowCmd())

	return c
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return oerrors.Exit(runTemplateList(c.OutOrStdout()))
		},
	}
}

func runTemplateList(w io.Writer) error {
	tbl := output.NewTable("NAME", "DESCRIPTION", "FILES", "DEFAULT")
	for _, t := range templates.List() {
		files, err := templates.ListTemplateFiles(t.Name)
		if err != nil {
			return err
		}
		def := ""
		if t.Default {
			def = "*"
		}
		tbl.Row(t.Name, t.Description, strconv.Itoa(len(files)), def)
	}
	fmt.Fprintln(w, tbl.String())
	return nil
}

func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the files of a template before pruning",
		Long: `Show every file a template renders, before any pruning.

The package directory appears as __project_slug__ and is renamed to the
project slug at generation time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return oerrors.Exit(runTemplateShow(c.OutOrStdout(), args[0]))
		},
	}
}

func runTemplateShow(w io.Writer, name string) error {
	t, err := templates.Get(name)
	if err != nil {
		return err
	}
	files, err := templates.ListTemplateFiles(t.Name)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, output.StyleDim.Render(t.UseCase))
	fmt.Fprintln(w, output.RenderSimpleTree(t.Name, files))
	return nil
}

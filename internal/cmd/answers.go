package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/answers"
	"github.com/opmodel/skel/internal/bake"
	"github.com/opmodel/skel/internal/config"
	oerrors "github.com/opmodel/skel/internal/errors"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/templates"
)

// answerFlags are the answer sources shared by new, prune, and verify.
type answerFlags struct {
	set     []string
	file    string
	replay  bool
	noInput bool
}

func (f *answerFlags) register(c *cobra.Command, prompts bool) {
	flags := c.Flags()
	flags.StringArrayVarP(&f.set, "set", "s", nil, "Set an answer as key=value (repeatable)")
	flags.StringVarP(&f.file, "answers", "a", "", "Read answers from a YAML file")
	flags.BoolVar(&f.replay, "replay", false, "Reuse the answers saved by the last bake of the template")
	if prompts {
		flags.BoolVar(&f.noInput, "no-input", false, "Do not prompt; use defaults for unanswered questions")
	}
}

// answerRequest collects everything needed to resolve an answer set.
type answerRequest struct {
	flags    answerFlags
	template string

	// projectName, when set, is used unless an answer source sets it.
	projectName string

	// forceName overrides every other source of project_name.
	forceName string

	prompt bool
}

// requireConfig surfaces a config file that failed to load.
func requireConfig(cfg *config.GlobalConfig) error {
	return cfg.LoadErr
}

// resolveAnswers layers the answer sources, lowest precedence first:
// config defaultContext, replay file, answers file, --set, then the
// positional project name. Unanswered questions are prompted for when
// req.prompt is set and stdin is a terminal.
func resolveAnswers(cfg *config.GlobalConfig, req answerRequest) (answers.Set, error) {
	var layers []map[string]string

	if req.projectName != "" {
		layers = append(layers, map[string]string{string(answers.KeyProjectName): req.projectName})
	}

	if req.flags.replay {
		path := bake.ReplayPath(cfg.ReplayDir, req.template)
		values, err := answers.LoadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return answers.Set{}, oerrors.NewNotFoundError("no replay file for template "+req.template, path,
					"Run 'skel new' once without --replay to record answers.")
			}
			return answers.Set{}, err
		}
		if req.forceName != "" {
			// The slug belongs to the recorded project, not the new one.
			delete(values, string(answers.KeyProjectSlug))
		}
		layers = append(layers, values)
	}

	if req.flags.file != "" {
		values, err := answers.LoadFile(req.flags.file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return answers.Set{}, oerrors.NewNotFoundError("answers file does not exist", req.flags.file, "")
			}
			return answers.Set{}, fmt.Errorf("loading answers file: %w", err)
		}
		layers = append(layers, values)
	}

	set, err := answers.ParseAssignments(req.flags.set)
	if err != nil {
		return answers.Set{}, err
	}
	layers = append(layers, set)

	if req.forceName != "" {
		layers = append(layers, map[string]string{string(answers.KeyProjectName): req.forceName})
	}

	supplied := answers.Merge(layers...)

	resolver := &answers.Resolver{}
	if cfg.Config != nil {
		resolver.Defaults = cfg.Config.DefaultContext
	}
	if req.prompt && !req.flags.noInput && !req.flags.replay && output.IsInteractive() {
		resolver.Prompter = answers.NewSurveyPrompter()
	}

	output.Debug("resolving answers", "supplied", len(supplied), "prompting", resolver.Prompter != nil)
	return resolver.Resolve(supplied)
}

// projectNameFromDir derives a project name from an existing project root.
func projectNameFromDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	name := filepath.Base(abs)
	if answers.ValidateProjectName(name) != nil {
		return ""
	}
	return name
}

// checkTemplate validates a --template value.
func checkTemplate(name string) error {
	_, err := templates.Get(name)
	return err
}

// dirMustExist reports a missing or non-directory project root.
func dirMustExist(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewNotFoundError("project directory does not exist", dir, "")
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return oerrors.NewValidationError("not a directory", dir, "", "")
	}
	return nil
}

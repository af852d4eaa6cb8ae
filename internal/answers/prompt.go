package answers

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks the user for answers. Implementations can be swapped so
// resolution is testable without a terminal.
type Prompter interface {
	// Input asks for free text.
	Input(message, def string) (string, error)

	// Select asks for one of choices.
	Select(message string, choices []string, def string) (string, error)
}

// SurveyPrompter prompts on the terminal with survey.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a terminal prompter.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// Input implements Prompter.
func (p *SurveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Select implements Prompter.
func (p *SurveyPrompter) Select(message string, choices []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: choices,
	}
	for _, c := range choices {
		if c == def {
			prompt.Default = def
			break
		}
	}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

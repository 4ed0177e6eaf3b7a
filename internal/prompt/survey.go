// Package prompt provides the interactive terminal prompter used by the CLI flows.
package prompt

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C
var ErrInterrupted = errors.New("prompt interrupted")

// SurveyPrompter asks questions on a terminal
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter prompts on the process stdio
func NewSurveyPrompter() *SurveyPrompter {
	return NewSurveyPrompterWithStdio(os.Stdin, os.Stdout, os.Stderr)
}

// NewSurveyPrompterWithStdio prompts on the given streams
func NewSurveyPrompterWithStdio(in terminal.FileReader, out terminal.FileWriter, errOut terminal.FileWriter) *SurveyPrompter {
	return &SurveyPrompter{
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

// Input asks for free text; an empty answer yields defaultValue
func (p *SurveyPrompter) Input(message, defaultValue string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: defaultValue}, &answer, p.opts...)
	return answer, translate(err)
}

// Confirm asks a yes/no question
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: defaultValue}, &answer, p.opts...)
	return answer, translate(err)
}

// Select asks to pick one of options
func (p *SurveyPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	var answer string
	q := &survey.Select{Message: message, Options: options}
	if defaultValue != "" {
		q.Default = defaultValue
	}
	err := survey.AskOne(q, &answer, p.opts...)
	return answer, translate(err)
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

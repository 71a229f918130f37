package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirmation := defaultValue

	confirmPrompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
		return false, err
	}

	return confirmation, nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return &missingFieldError{field: field}
		}
		return nil
	}
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return e.field + " is required"
}

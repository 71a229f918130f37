package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptLogin collects the login identity. lastPhone prefills the phone field
// so returning users only confirm it.
func PromptLogin(lastPhone string) (fullName, phone string, err error) {
	phone = lastPhone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Value(&fullName),
			huh.NewInput().
				Title("Phone").
				Description("e.g. 0803...").
				Value(&phone).
				Validate(notEmpty("phone")),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", err
	}

	return fullName, phone, nil
}

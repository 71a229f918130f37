package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptBuyerDetails collects the manual-vendor buyer fields. All three are
// required before the confirmation window opens.
func PromptBuyerDetails(defaultName, defaultPhone string) (name, phone, email string, err error) {
	name = defaultName
	phone = defaultPhone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name").
				Value(&name).
				Validate(notEmpty("full name")),
			huh.NewInput().
				Title("Phone").
				Description("e.g. 0803...").
				Value(&phone).
				Validate(notEmpty("phone")),
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(notEmpty("email")),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", "", err
	}

	return name, phone, email, nil
}

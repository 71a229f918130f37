package prompts

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptWithdrawal collects the destination account for a withdrawal.
func PromptWithdrawal() (account, bank, amount string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account Number").
				Value(&account).
				Validate(notEmpty("account number")),
			huh.NewInput().
				Title("Bank").
				Value(&bank).
				Validate(notEmpty("bank")),
			huh.NewInput().
				Title("Amount").
				Description("Enter the amount, no currency symbol (e.g. 5000)").
				Value(&amount).
				Validate(validAmount),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", "", err
	}

	return account, bank, amount, nil
}

func validAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return &missingFieldError{field: "amount"}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return &invalidAmountError{}
	}
	if amount <= 0 {
		return &invalidAmountError{}
	}
	return nil
}

type invalidAmountError struct{}

func (e *invalidAmountError) Error() string {
	return "amount must be a positive number"
}

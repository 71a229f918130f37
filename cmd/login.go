package cmd

import (
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewLoginCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the wallet",
		Long: `Log in to the wallet.

	The session is a locally stored record, not a verified credential. The
	phone number from the previous session is offered as the default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fullName, phone, err := prompts.PromptLogin(svc.Session.LastPhone())
			if err != nil {
				return err
			}

			svc.Session.SetUser(&model.User{
				FullName: fullName,
				Phone:    phone,
			})

			pterm.Success.Printf("Logged in as %s\n", phone)
			return nil
		},
	}
}

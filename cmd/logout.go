package cmd

import (
	"github.com/goldtrust/gtw/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewLogoutCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the session",
		Long: `Log out and clear the session.

	Removes the user record and the balance. Transaction history and the last
	used phone number are kept for the next login.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if svc.Session.User() == nil {
				pterm.Info.Println("Nobody is logged in")
				return nil
			}

			svc.Session.Logout()

			pterm.Success.Println("Logged out")
			return nil
		},
	}
}

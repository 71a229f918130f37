package cmd

import (
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the current session, balance and pending withdrawal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderSessionInfo(
				svc.Session.User(),
				svc.Session.Balance(),
				svc.Withdraw.Get(),
			)
		},
	}
}

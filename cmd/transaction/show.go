package transaction

import (
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show a transaction receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record := svc.Ledger.FindByID(args[0])
			if record == nil {
				pterm.Error.Printf("No transaction with ID %s\n", args[0])
				return nil
			}

			return views.RenderReceipt(*record)
		},
	}
}

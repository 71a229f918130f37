package transaction

import (
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/prompts"
	"github.com/goldtrust/gtw/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction record",
		Long:  `Delete a transaction record from the local history. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record := svc.Ledger.FindByID(args[0])
			if record == nil {
				pterm.Error.Printf("No transaction with ID %s\n", args[0])
				return nil
			}

			pterm.Warning.Println("About to delete this transaction:")
			if err := views.RenderReceipt(*record); err != nil {
				return err
			}

			pterm.Warning.Println("This action cannot be undone!")

			confirmation, err := prompts.PromptConfirm("Do you want to delete this transaction?", false)
			if err != nil {
				return err
			}

			if !confirmation {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			svc.Ledger.RemoveByID(args[0])

			pterm.Success.Printf("Transaction %s deleted successfully\n", args[0])
			return nil
		},
	}
}

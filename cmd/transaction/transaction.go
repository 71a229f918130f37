package transaction

import (
	"github.com/goldtrust/gtw/internal/service"
	"github.com/spf13/cobra"
)

// NewTransactionCmd represents the transaction command group
func NewTransactionCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Manage transaction history",
		Long:  "Manage transaction history: list records, show a receipt, delete, or import.",
	}

	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))
	cmd.AddCommand(NewImportCmd(svc))

	return cmd
}

package transaction

import (
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transaction history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := svc.Ledger.List()

			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			return views.NewTransactionListView().Render(records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most this many records (0 = all)")

	return cmd
}

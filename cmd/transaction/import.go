package transaction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewImportCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the transaction history from a JSON file",
		Long: `Replace the transaction history from a JSON file.

	The file must contain an array of transaction records in the canonical
	shape. The entire stored history is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var records []model.Transaction
			if err := json.Unmarshal(raw, &records); err != nil {
				return fmt.Errorf("%s is not a transaction array: %w", args[0], err)
			}

			existing := len(svc.Ledger.List())
			if existing > 0 {
				pterm.Warning.Printf("This replaces all %d stored transactions!\n", existing)

				confirmation, err := prompts.PromptConfirm("Overwrite the transaction history?", false)
				if err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Import cancelled")
					return nil
				}
			}

			svc.Ledger.ReplaceAll(records)

			pterm.Success.Printf("Imported %d transactions\n", len(records))
			return nil
		},
	}
}

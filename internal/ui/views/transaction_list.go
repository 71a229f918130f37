package views

import (
	"time"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(records []model.Transaction) error {
	if len(records) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println("Transaction history (newest first)")

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Amount", "Status", "Name"},
	}

	for _, record := range records {
		amount := utils.FormatNaira(record.Amount)

		var coloredType, coloredAmount string

		switch record.Type {
		case constants.TxTypeBuyCode:
			coloredType = pterm.Yellow(record.Type)
			coloredAmount = pterm.Yellow(amount)
		case constants.TxTypeTopup:
			coloredType = pterm.Green(record.Type)
			coloredAmount = pterm.Green(amount)
		case constants.TxTypeWithdraw:
			coloredType = pterm.Red(record.Type)
			coloredAmount = pterm.Red(amount)
		default:
			coloredType = record.Type
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			record.ID,
			formatDate(record.CreatedAt),
			coloredType,
			coloredAmount,
			record.Status,
			record.FullName,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(records))
	return nil
}

func formatDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("2006-01-02 15:04")
}

package views

import (
	"fmt"

	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/pterm/pterm"
)

// RenderReceipt prints the receipt-style detail of a single ledger record.
func RenderReceipt(record model.Transaction) error {
	pterm.DefaultSection.Println("Transaction receipt")

	receiptData := pterm.TableData{
		{"ID", record.ID},
		{"Type", record.Type},
		{"Amount", utils.FormatNaira(record.Amount)},
		{"Status", record.Status},
		{"Date", formatDate(record.CreatedAt)},
		{"Name", record.FullName},
		{"Phone", record.Phone},
	}

	if record.Account != "" {
		receiptData = append(receiptData, []string{"Account", record.Account})
	}
	if record.Bank != "" {
		receiptData = append(receiptData, []string{"Bank", record.Bank})
	}

	for key, value := range record.Meta {
		receiptData = append(receiptData, []string{"meta." + key, fmt.Sprint(value)})
	}

	return pterm.DefaultTable.WithData(receiptData).Render()
}

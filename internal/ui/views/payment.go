package views

import (
	"github.com/goldtrust/gtw/internal/config"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/pterm/pterm"
)

// RenderPaymentInstructions shows the vendor bank details for the manual
// transfer path.
func RenderPaymentInstructions(vendor config.VendorConfig, price float64) error {
	pterm.DefaultSection.Println("Payment Instructions")
	pterm.Println("Transfer the exact amount to the account below, then confirm with the vendor.")

	instructionData := pterm.TableData{
		{"Account Name", vendor.AccountName},
		{"Account Number", vendor.AccountNumber},
		{"Bank", vendor.Bank},
		{"Amount", utils.FormatNaira(price)},
	}

	return pterm.DefaultTable.WithData(instructionData).Render()
}

// RenderCountdown prints the time left to complete the payment. The display
// turns red inside the final minute.
func RenderCountdown(remaining int) {
	clock := utils.FormatClock(remaining)

	if remaining <= 60 {
		clock = pterm.Red(clock)
	} else {
		clock = pterm.Yellow(clock)
	}

	pterm.Printfln("%s  time left to complete payment", clock)
}

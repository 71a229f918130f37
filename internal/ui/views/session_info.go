package views

import (
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/pterm/pterm"
)

// RenderSessionInfo shows who is logged in, the balance, and any in-flight
// withdrawal.
func RenderSessionInfo(user *model.User, balance float64, pending *model.PendingWithdraw) error {
	if user == nil {
		pterm.Warning.Println("Not logged in")
		return nil
	}

	pterm.DefaultSection.Println("Session")

	name := user.FullName
	if name == "" {
		name = "-"
	}

	sessionData := pterm.TableData{
		{"Name", name},
		{"Phone", user.Phone},
		{"Balance", utils.FormatNaira(balance)},
	}

	if err := pterm.DefaultTable.WithData(sessionData).Render(); err != nil {
		return err
	}

	if pending != nil {
		pterm.DefaultSection.Println("Pending withdrawal")

		pendingData := pterm.TableData{
			{"Account", pending.Account},
			{"Bank", pending.Bank},
			{"Amount", utils.FormatNaira(pending.Amount)},
			{"Started", formatDate(pending.CreatedAt)},
		}

		if err := pterm.DefaultTable.WithData(pendingData).Render(); err != nil {
			return err
		}
	}

	return nil
}

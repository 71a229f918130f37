package cmd

import (
	"fmt"
	"strconv"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewTopupCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "topup <amount>",
		Short: "Add funds to the wallet balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if svc.Session.User() == nil {
				return fmt.Errorf("log in before topping up")
			}

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %s", args[0])
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive")
			}

			newBalance := svc.Session.Balance() + amount
			svc.Session.SetBalance(newBalance)

			svc.Ledger.Append(model.TransactionInput{
				Type:   constants.TxTypeTopup,
				Amount: amount,
				Status: constants.StatusPending,
			})

			pterm.Success.Printf("Balance is now %s\n", utils.FormatNaira(newBalance))
			printSeparator()
			return nil
		},
	}
}

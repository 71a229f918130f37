package cmd

import (
	"fmt"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui/prompts"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/goldtrust/gtw/internal/withdraw"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Start a withdrawal to a bank account",
		Long: `Start a withdrawal to a bank account.

	Records the destination as the pending withdrawal and appends the attempt
	to the transaction history. The vendor resolves it out of band.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if svc.Session.User() == nil {
				return fmt.Errorf("log in before withdrawing")
			}

			account, bank, amountStr, err := prompts.PromptWithdrawal()
			if err != nil {
				return err
			}

			amount := utils.ToAmount(amountStr)
			if amount > svc.Session.Balance() {
				return fmt.Errorf("amount exceeds your balance of %s", utils.FormatNaira(svc.Session.Balance()))
			}

			confirmed, err := prompts.PromptConfirm(
				fmt.Sprintf("Withdraw %s to %s (%s)?", utils.FormatNaira(amount), account, bank),
				false,
			)
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Withdrawal cancelled")
				return nil
			}

			pending := svc.Withdraw.Set(withdraw.Input{
				Account: account,
				Bank:    bank,
				Amount:  amount,
			})

			svc.Ledger.Append(model.TransactionInput{
				Type:    constants.TxTypeWithdraw,
				Amount:  amount,
				Status:  constants.StatusPending,
				Account: pending.Account,
				Bank:    pending.Bank,
			})

			pterm.Success.Println("Withdrawal recorded, pending vendor confirmation")
			printSeparator()
			return nil
		},
	}

	cmd.AddCommand(newWithdrawStatusCmd(svc))
	cmd.AddCommand(newWithdrawCancelCmd(svc))

	return cmd
}

func newWithdrawStatusCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the pending withdrawal",
		RunE: func(cmd *cobra.Command, args []string) error {
			pending := svc.Withdraw.Get()
			if pending == nil {
				pterm.Info.Println("No withdrawal is pending")
				return nil
			}

			statusData := pterm.TableData{
				{"Account", pending.Account},
				{"Bank", pending.Bank},
				{"Amount", utils.FormatNaira(pending.Amount)},
				{"Started", pending.CreatedAt},
			}

			return pterm.DefaultTable.WithData(statusData).Render()
		},
	}
}

func newWithdrawCancelCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Abandon the pending withdrawal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if svc.Withdraw.Get() == nil {
				pterm.Info.Println("No withdrawal is pending")
				return nil
			}

			svc.Withdraw.Clear()

			pterm.Success.Println("Pending withdrawal cleared")
			return nil
		},
	}
}

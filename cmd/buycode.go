package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goldtrust/gtw/internal/config"
	"github.com/goldtrust/gtw/internal/flow"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/service"
	"github.com/goldtrust/gtw/internal/ui"
	"github.com/goldtrust/gtw/internal/ui/prompts"
	"github.com/goldtrust/gtw/internal/ui/views"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	choiceOnline   = "Online Checkout"
	choiceVendor   = "Pay Vendor"
	choiceConfirm  = "Confirm payment"
	choiceTimeLeft = "Show time left"
	choiceContact  = "Contact vendor on WhatsApp"
	choiceChange   = "Change payment method"
)

type buyCodeRunner struct {
	svc  *service.Service
	cfg  *config.Config
	ctrl *flow.Controller
}

func NewBuyCodeCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "buycode",
		Short: "Buy a withdrawal code",
		Long: `Buy a withdrawal code.

	Two payment paths: instant online checkout through the external gateway,
	or a manual bank transfer to the vendor with a 10 minute confirmation
	window. Manual transfers are confirmed by the vendor, never automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &buyCodeRunner{
				svc: svc,
				cfg: cfg,
			}
			return runner.Run()
		},
	}
}

func (r *buyCodeRunner) Run() error {
	ui.PrintL1Title("BUY YOUR WITHDRAWAL CODE")
	pterm.Println("Pick a safe payment option: instant card checkout, or pay the vendor with manual confirmation.")

	r.ctrl = flow.NewController(r.svc.Ledger, flow.Config{
		CodePrice:     r.cfg.Payment.CodePrice,
		ConfirmWindow: r.cfg.Payment.ConfirmWindowSeconds,
		VerifyDelay:   time.Duration(r.cfg.Payment.VerifyDelayMillis) * time.Millisecond,
		GatewayURL:    r.cfg.Payment.GatewayURL,
		ContactURL:    whatsAppLink(r.cfg.Vendor.WhatsApp),
	})
	r.ctrl.SetOpener(openLink)
	defer r.ctrl.Close()

	r.ctrl.OnExpire(func() {
		pterm.Warning.Println("Payment time expired! Restart the process.")
	})

	for {
		method, err := r.selectMethod()
		if err != nil {
			return err
		}

		switch method {
		case choiceOnline:
			r.ctrl.ChooseInstant()
			pterm.Info.Println("Complete your purchase in the browser, the gateway takes it from here")
			return nil
		case choiceVendor:
			done, err := r.vendorFlow()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			// The user changed method, offer the selection again.
		}
	}
}

func (r *buyCodeRunner) selectMethod() (string, error) {
	online := fmt.Sprintf("%s (%s)", choiceOnline, utils.FormatNaira(r.cfg.Payment.GatewayPrice))
	vendor := fmt.Sprintf("%s (%s)", choiceVendor, utils.FormatNaira(r.cfg.Payment.CodePrice))

	selected, err := prompts.PromptSelect("Payment method:", []string{online, vendor}, vendor)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(selected, choiceOnline) {
		return choiceOnline, nil
	}
	return choiceVendor, nil
}

// vendorFlow walks the manual path. It reports done=false when the user backs
// out to the method selection.
func (r *buyCodeRunner) vendorFlow() (done bool, err error) {
	r.ctrl.ChooseManual()

	ui.PrintL2Title("Pay Vendor, Manual Confirmation")
	pterm.Println("Make a bank transfer and submit your receipt to confirm.")

	defaults := r.buyerDefaults()

	for {
		name, phone, email, err := prompts.PromptBuyerDetails(defaults.Name, defaults.Phone)
		if err != nil {
			return false, err
		}

		submitErr := r.ctrl.SubmitDetails(flow.BuyerDetails{
			Name:  name,
			Phone: phone,
			Email: email,
		})
		if submitErr == nil {
			break
		}

		pterm.Error.Println(capitalize(submitErr.Error()))
	}

	if err := views.RenderPaymentInstructions(r.cfg.Vendor, r.cfg.Payment.CodePrice); err != nil {
		return false, err
	}
	views.RenderCountdown(r.ctrl.Remaining())

	resultCh := make(chan model.Transaction, 1)
	r.ctrl.OnResult(func(record model.Transaction) {
		resultCh <- record
	})

	for {
		choice, err := prompts.PromptSelect(
			"Next step:",
			[]string{choiceConfirm, choiceTimeLeft, choiceContact, choiceChange},
			choiceConfirm,
		)
		if err != nil {
			return false, err
		}

		switch choice {
		case choiceConfirm:
			if err := r.confirm(resultCh); err != nil {
				if errors.Is(err, flow.ErrWindowExpired) {
					return false, err
				}
				pterm.Error.Println(capitalize(err.Error()))
				continue
			}
			return true, nil

		case choiceTimeLeft:
			if r.ctrl.State() == flow.StateExpired {
				return false, flow.ErrWindowExpired
			}
			views.RenderCountdown(r.ctrl.Remaining())

		case choiceContact:
			r.ctrl.ContactVendor()

		case choiceChange:
			r.ctrl.ChangeMethod()
			return false, nil
		}
	}
}

func (r *buyCodeRunner) confirm(resultCh <-chan model.Transaction) error {
	if err := r.ctrl.Confirm(); err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Confirming...")

	verifyDelay := time.Duration(r.cfg.Payment.VerifyDelayMillis) * time.Millisecond

	select {
	case record := <-resultCh:
		spinner.Warning("Payment pending")
		pterm.Println("We couldn't auto-verify your payment. Send your receipt to the vendor to confirm.")
		printSeparator()

		if err := views.RenderReceipt(record); err != nil {
			return err
		}

		sendNow, err := prompts.PromptConfirm("Send your receipt to the vendor on WhatsApp now?", true)
		if err != nil {
			return err
		}
		if sendNow {
			r.ctrl.ContactVendor()
		}

		return nil

	case <-time.After(verifyDelay + 10*time.Second):
		spinner.Fail("Verification never resolved")
		return fmt.Errorf("verification timed out, check your transaction history")
	}
}

func (r *buyCodeRunner) buyerDefaults() flow.BuyerDetails {
	defaults := flow.BuyerDetails{
		Phone: r.svc.Session.LastPhone(),
	}

	if user := r.svc.Session.User(); user != nil {
		defaults.Name = user.FullName
		if user.Phone != "" {
			defaults.Phone = user.Phone
		}
	}

	return defaults
}

func whatsAppLink(number string) string {
	return "https://wa.me/" + strings.TrimPrefix(number, "+")
}

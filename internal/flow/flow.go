package flow

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/ledger"
	"github.com/goldtrust/gtw/internal/model"
)

// State is the payment flow position. The manual-vendor path walks
// SelectingMethod → CollectingDetails → AwaitingConfirmation and ends in
// Expired or PendingManualReview; the instant-checkout path is terminal at
// SelectingMethod because control leaves for the external gateway.
type State int

const (
	StateSelectingMethod State = iota
	StateCollectingDetails
	StateAwaitingConfirmation
	StateConfirmed
	StateExpired
	StatePendingManualReview
)

func (s State) String() string {
	switch s {
	case StateSelectingMethod:
		return "selecting_method"
	case StateCollectingDetails:
		return "collecting_details"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateConfirmed:
		return "confirmed"
	case StateExpired:
		return "expired"
	case StatePendingManualReview:
		return "pending_manual_review"
	default:
		return "unknown"
	}
}

var (
	ErrMissingDetails   = errors.New("name, phone and email are all required")
	ErrWindowExpired    = errors.New("payment time expired, restart the process")
	ErrNotAwaiting      = errors.New("no payment is awaiting confirmation")
	ErrAlreadyVerifying = errors.New("confirmation is already in progress")
)

// BuyerDetails is what the manual-vendor path collects before the
// confirmation window opens.
type BuyerDetails struct {
	Name  string
	Phone string
	Email string
}

// Config carries the flow parameters. Zero values fall back to the product
// defaults (600 s window, 1200 ms simulated verification).
type Config struct {
	CodePrice     float64
	ConfirmWindow int           // seconds
	TickInterval  time.Duration // how often one second elapses; tests shrink it
	VerifyDelay   time.Duration
	GatewayURL    string
	ContactURL    string
}

// Controller drives the payment flow. All transitions happen under one mutex:
// the countdown tick and the deferred verification fire on timer goroutines,
// and they must never interleave with a user action.
type Controller struct {
	mu  sync.Mutex
	cfg Config

	ledger  *ledger.Ledger
	state   State
	details BuyerDetails

	countdown *Countdown
	verify    *time.Timer
	verifying bool

	open     func(url string)
	onTick   func(remaining int)
	onExpire func()
	onResult func(record model.Transaction)
}

func NewController(l *ledger.Ledger, cfg Config) *Controller {
	if cfg.ConfirmWindow <= 0 {
		cfg.ConfirmWindow = constants.DefaultConfirmWindowSeconds
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.VerifyDelay <= 0 {
		cfg.VerifyDelay = constants.DefaultVerifyDelayMillis * time.Millisecond
	}

	return &Controller{
		cfg:    cfg,
		ledger: l,
		state:  StateSelectingMethod,
	}
}

// SetOpener installs the link opener used for the gateway and the vendor
// contact. Opening is fire-and-forget; the flow never inspects the outcome.
func (c *Controller) SetOpener(open func(url string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func (c *Controller) OnTick(fn func(remaining int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = fn
}

func (c *Controller) OnExpire(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpire = fn
}

// OnResult is called once the simulated verification resolves and the
// transaction has been recorded.
func (c *Controller) OnResult(fn func(record model.Transaction)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResult = fn
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Details() BuyerDetails {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.details
}

// Remaining returns the confirmation window seconds left, or 0 when no
// window is open.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.countdown == nil {
		return 0
	}
	return c.countdown.Remaining()
}

// ChooseInstant hands the user over to the external checkout gateway. The
// flow ends here; nothing is recorded because the gateway owns the outcome.
func (c *Controller) ChooseInstant() {
	c.mu.Lock()
	open := c.open
	url := c.cfg.GatewayURL
	c.mu.Unlock()

	if open != nil && url != "" {
		open(url)
	}
}

// ContactVendor opens the vendor messaging channel. Valid in any state.
func (c *Controller) ContactVendor() {
	c.mu.Lock()
	open := c.open
	url := c.cfg.ContactURL
	c.mu.Unlock()

	if open != nil && url != "" {
		open(url)
	}
}

// ChooseManual enters the manual-vendor-transfer path.
func (c *Controller) ChooseManual() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()
	c.state = StateCollectingDetails
}

// SubmitDetails validates the buyer details and opens the confirmation
// window. On validation failure the state is unchanged and the error is the
// user-visible message.
func (c *Controller) SubmitDetails(details BuyerDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCollectingDetails {
		return errors.New("choose the vendor payment method first")
	}

	if strings.TrimSpace(details.Name) == "" ||
		strings.TrimSpace(details.Phone) == "" ||
		strings.TrimSpace(details.Email) == "" {
		return ErrMissingDetails
	}

	c.details = details
	c.state = StateAwaitingConfirmation
	c.countdown = StartCountdown(c.cfg.ConfirmWindow, c.cfg.TickInterval, c.handleTick, c.handleExpire)

	return nil
}

// Confirm is only valid while the countdown is running. It schedules the
// simulated verification; the flow resolves to PendingManualReview when it
// fires because a manual transfer is never auto-verified.
func (c *Controller) Confirm() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateAwaitingConfirmation:
	case StateExpired:
		return ErrWindowExpired
	default:
		return ErrNotAwaiting
	}

	if c.verifying {
		return ErrAlreadyVerifying
	}
	if c.countdown == nil || c.countdown.Remaining() == 0 {
		return ErrWindowExpired
	}

	c.verifying = true
	c.verify = time.AfterFunc(c.cfg.VerifyDelay, c.finishVerification)

	return nil
}

// ChangeMethod abandons the current path: the countdown and any in-flight
// verification are cancelled and the flow resets to SelectingMethod.
func (c *Controller) ChangeMethod() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()
	c.state = StateSelectingMethod
}

// Close tears the flow down when the holder goes away.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()
}

func (c *Controller) teardownLocked() {
	if c.countdown != nil {
		c.countdown.Cancel()
		c.countdown = nil
	}
	if c.verify != nil {
		c.verify.Stop()
		c.verify = nil
	}
	c.verifying = false
}

func (c *Controller) handleTick(remaining int) {
	c.mu.Lock()
	onTick := c.onTick
	c.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
}

func (c *Controller) handleExpire() {
	c.mu.Lock()
	if c.state == StateAwaitingConfirmation && !c.verifying {
		c.state = StateExpired
	}
	onExpire := c.onExpire
	c.mu.Unlock()

	if onExpire != nil {
		onExpire()
	}
}

// finishVerification runs when the simulated verification latency elapses.
// A confirmation accepted while the window was open still resolves even if
// the window ran out during the latency.
func (c *Controller) finishVerification() {
	c.mu.Lock()

	if !c.verifying {
		// The flow was abandoned before the verification fired.
		c.mu.Unlock()
		return
	}

	if c.countdown != nil {
		c.countdown.Cancel()
		c.countdown = nil
	}
	c.verify = nil
	c.verifying = false
	c.state = StatePendingManualReview

	details := c.details
	onResult := c.onResult

	record := c.ledger.Append(model.TransactionInput{
		Type:     constants.TxTypeBuyCode,
		Amount:   c.cfg.CodePrice,
		Status:   constants.StatusPending,
		FullName: details.Name,
		Phone:    details.Phone,
		Meta: map[string]any{
			"name":  details.Name,
			"phone": details.Phone,
			"email": details.Email,
		},
	})

	c.mu.Unlock()

	if onResult != nil {
		onResult(record)
	}
}

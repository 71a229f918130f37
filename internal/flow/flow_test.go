package flow

import (
	"testing"
	"time"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/ledger"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/session"
	"github.com/goldtrust/gtw/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(cfg Config) (*Controller, *ledger.Ledger) {
	kv := store.NewMemoryStore()
	l := ledger.New(kv, session.New(kv))

	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Millisecond
	}
	if cfg.VerifyDelay == 0 {
		cfg.VerifyDelay = 5 * time.Millisecond
	}
	if cfg.CodePrice == 0 {
		cfg.CodePrice = 5500
	}

	return NewController(l, cfg), l
}

func submitAda(t *testing.T, c *Controller) {
	t.Helper()

	c.ChooseManual()
	require.NoError(t, c.SubmitDetails(BuyerDetails{
		Name:  "Ada",
		Phone: "0803000000",
		Email: "a@b.com",
	}))
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestInitialState(t *testing.T) {
	c, _ := newTestController(Config{ConfirmWindow: 600})
	defer c.Close()

	assert.Equal(t, StateSelectingMethod, c.State())
	assert.Equal(t, 0, c.Remaining())
}

func TestChooseInstantOpensGateway(t *testing.T) {
	c, l := newTestController(Config{ConfirmWindow: 600, GatewayURL: "https://gateway.example/pay"})
	defer c.Close()

	var opened string
	c.SetOpener(func(url string) { opened = url })

	c.ChooseInstant()

	assert.Equal(t, "https://gateway.example/pay", opened)
	// The gateway owns the outcome; nothing is recorded locally.
	assert.Empty(t, l.List())
	assert.Equal(t, StateSelectingMethod, c.State())
}

func TestSubmitDetailsRequiresAllFields(t *testing.T) {
	c, _ := newTestController(Config{ConfirmWindow: 600})
	defer c.Close()

	c.ChooseManual()

	err := c.SubmitDetails(BuyerDetails{Name: "Ada", Phone: "0803000000"})
	assert.ErrorIs(t, err, ErrMissingDetails)

	// Validation failure keeps the state unchanged.
	assert.Equal(t, StateCollectingDetails, c.State())
}

func TestSubmitDetailsOpensConfirmationWindow(t *testing.T) {
	c, _ := newTestController(Config{ConfirmWindow: 600, TickInterval: time.Hour})
	defer c.Close()

	submitAda(t, c)

	assert.Equal(t, StateAwaitingConfirmation, c.State())
	assert.Equal(t, 600, c.Remaining())
}

func TestConfirmOutsideWindowRejected(t *testing.T) {
	c, l := newTestController(Config{ConfirmWindow: 600})
	defer c.Close()

	err := c.Confirm()
	assert.ErrorIs(t, err, ErrNotAwaiting)
	assert.Empty(t, l.List())
}

func TestExpiryRejectsConfirmation(t *testing.T) {
	c, l := newTestController(Config{ConfirmWindow: 2})
	defer c.Close()

	expired := make(chan struct{})
	c.OnExpire(func() { close(expired) })

	submitAda(t, c)
	waitFor(t, expired, "countdown expiry")

	assert.Equal(t, StateExpired, c.State())
	assert.Equal(t, 0, c.Remaining())

	err := c.Confirm()
	assert.ErrorIs(t, err, ErrWindowExpired)

	// Rejected confirmation appends nothing.
	assert.Empty(t, l.List())
}

func TestConfirmRecordsPendingTransaction(t *testing.T) {
	c, l := newTestController(Config{ConfirmWindow: 600, TickInterval: time.Hour})
	defer c.Close()

	done := make(chan struct{})
	var recorded model.Transaction
	c.OnResult(func(record model.Transaction) {
		recorded = record
		close(done)
	})

	submitAda(t, c)
	require.NoError(t, c.Confirm())
	waitFor(t, done, "verification result")

	assert.Equal(t, StatePendingManualReview, c.State())

	records := l.List()
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, recorded.ID, record.ID)
	assert.Equal(t, constants.TxTypeBuyCode, record.Type)
	assert.Equal(t, constants.StatusPending, record.Status)
	assert.Equal(t, 5500.0, record.Amount)
	assert.Equal(t, "Ada", record.FullName)
	assert.Equal(t, "Ada", record.Meta["name"])
	assert.Equal(t, "0803000000", record.Meta["phone"])
	assert.Equal(t, "a@b.com", record.Meta["email"])
}

func TestConfirmTwiceWhileVerifying(t *testing.T) {
	c, _ := newTestController(Config{
		ConfirmWindow: 600,
		TickInterval:  time.Hour,
		VerifyDelay:   time.Hour,
	})
	defer c.Close()

	submitAda(t, c)
	require.NoError(t, c.Confirm())

	assert.ErrorIs(t, c.Confirm(), ErrAlreadyVerifying)
}

func TestChangeMethodCancelsCountdown(t *testing.T) {
	c, _ := newTestController(Config{ConfirmWindow: 3, TickInterval: 20 * time.Millisecond})
	defer c.Close()

	expired := make(chan struct{})
	c.OnExpire(func() { close(expired) })

	submitAda(t, c)
	c.ChangeMethod()

	assert.Equal(t, StateSelectingMethod, c.State())
	assert.Equal(t, 0, c.Remaining())

	// The cancelled countdown must never fire.
	select {
	case <-expired:
		t.Fatal("expire fired after the flow left the confirmation window")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestAbandonCancelsVerification(t *testing.T) {
	c, l := newTestController(Config{
		ConfirmWindow: 600,
		TickInterval:  time.Hour,
		VerifyDelay:   10 * time.Millisecond,
	})
	defer c.Close()

	submitAda(t, c)
	require.NoError(t, c.Confirm())
	c.ChangeMethod()

	time.Sleep(50 * time.Millisecond)

	// The abandoned verification records nothing.
	assert.Empty(t, l.List())
	assert.Equal(t, StateSelectingMethod, c.State())
}

func TestTickCallback(t *testing.T) {
	c, _ := newTestController(Config{ConfirmWindow: 3})
	defer c.Close()

	ticks := make(chan int, 3)
	c.OnTick(func(remaining int) { ticks <- remaining })

	submitAda(t, c)

	select {
	case remaining := <-ticks:
		assert.Less(t, remaining, 3)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick observed")
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "selecting_method", StateSelectingMethod.String())
	assert.Equal(t, "awaiting_confirmation", StateAwaitingConfirmation.String())
	assert.Equal(t, "expired", StateExpired.String())
	assert.Equal(t, "pending_manual_review", StatePendingManualReview.String())
}

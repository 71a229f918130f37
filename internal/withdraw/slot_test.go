package withdraw

import (
	"testing"
	"time"

	"github.com/goldtrust/gtw/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetNormalizesPayload(t *testing.T) {
	slot := New(store.NewMemoryStore())

	slot.Set(Input{
		Account: "6511699109",
		Bank:    "Moniepoint",
		Amount:  "5000",
	})

	pending := slot.Get()
	require.NotNil(t, pending)
	assert.Equal(t, "6511699109", pending.Account)
	assert.Equal(t, "Moniepoint", pending.Bank)
	assert.Equal(t, float64(5000), pending.Amount)
	assert.NotNil(t, pending.Meta)

	_, err := time.Parse(time.RFC3339, pending.CreatedAt)
	assert.NoError(t, err)
}

func TestSetMapsFieldAliases(t *testing.T) {
	slot := New(store.NewMemoryStore())

	slot.Set(Input{
		AccountNumber: "1234567890",
		BankName:      "GTBank",
		Amount:        250,
	})

	pending := slot.Get()
	require.NotNil(t, pending)
	assert.Equal(t, "1234567890", pending.Account)
	assert.Equal(t, "GTBank", pending.Bank)
}

func TestSetPrefersCanonicalAlias(t *testing.T) {
	slot := New(store.NewMemoryStore())

	slot.Set(Input{
		Account:       "primary",
		AccountNumber: "secondary",
		AccountNo:     "tertiary",
	})

	pending := slot.Get()
	require.NotNil(t, pending)
	assert.Equal(t, "primary", pending.Account)
}

func TestSetCoercesBadAmountToZero(t *testing.T) {
	slot := New(store.NewMemoryStore())

	slot.Set(Input{Account: "1", Bank: "X", Amount: "lots"})

	pending := slot.Get()
	require.NotNil(t, pending)
	assert.Equal(t, float64(0), pending.Amount)
}

func TestSetOverwritesSingleSlot(t *testing.T) {
	slot := New(store.NewMemoryStore())

	slot.Set(Input{Account: "first"})
	slot.Set(Input{Account: "second"})

	pending := slot.Get()
	require.NotNil(t, pending)
	assert.Equal(t, "second", pending.Account)
}

func TestClear(t *testing.T) {
	slot := New(store.NewMemoryStore())

	assert.Nil(t, slot.Get())

	slot.Set(Input{Account: "1"})
	slot.Clear()

	assert.Nil(t, slot.Get())

	// Clearing an empty slot is a no-op.
	slot.Clear()
	assert.Nil(t, slot.Get())
}

package withdraw

import (
	"time"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/store"
	"github.com/goldtrust/gtw/internal/utils"
)

// Input is the loose payload accepted when initiating a withdrawal. Field
// aliases come from the different flows that historically wrote this record.
type Input struct {
	Account       string
	AccountNumber string
	AccountNo     string
	Bank          string
	BankName      string
	Amount        any
	CreatedAt     string
	Meta          map[string]any
}

// Slot stores at most one in-flight withdrawal; Set overwrites wholesale.
type Slot struct {
	kv store.KeyedStore
}

func New(kv store.KeyedStore) *Slot {
	return &Slot{kv: kv}
}

// Set normalizes the payload and overwrites the slot. The normalized record
// is returned for display.
func (s *Slot) Set(input Input) model.PendingWithdraw {
	record := model.PendingWithdraw{
		Account:   firstNonEmpty(input.Account, input.AccountNumber, input.AccountNo),
		Bank:      firstNonEmpty(input.Bank, input.BankName),
		Amount:    utils.ToAmount(input.Amount),
		CreatedAt: input.CreatedAt,
		Meta:      input.Meta,
	}

	if record.CreatedAt == "" {
		record.CreatedAt = time.Now().Format(time.RFC3339)
	}
	if record.Meta == nil {
		record.Meta = map[string]any{}
	}

	s.kv.Put(constants.KeyPendingWithdraw, record)

	return record
}

// Get returns the current slot value, or nil when no withdrawal is pending.
func (s *Slot) Get() *model.PendingWithdraw {
	var record model.PendingWithdraw
	if !s.kv.Get(constants.KeyPendingWithdraw, &record) {
		return nil
	}
	return &record
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.kv.Remove(constants.KeyPendingWithdraw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

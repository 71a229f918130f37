package service

import (
	"github.com/goldtrust/gtw/internal/ledger"
	"github.com/goldtrust/gtw/internal/session"
	"github.com/goldtrust/gtw/internal/store"
	"github.com/goldtrust/gtw/internal/withdraw"
)

// Service bundles the wallet components built over one shared record store.
type Service struct {
	Session  *session.Store
	Ledger   *ledger.Ledger
	Withdraw *withdraw.Slot
}

func NewService(kv store.KeyedStore) *Service {
	sessionStore := session.New(kv)

	return &Service{
		Session:  sessionStore,
		Ledger:   ledger.New(kv, sessionStore),
		Withdraw: withdraw.New(kv),
	}
}

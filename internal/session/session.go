package session

import (
	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/store"
	"github.com/goldtrust/gtw/internal/utils"
)

// Store holds the user identity and the numeric balance.
type Store struct {
	kv store.KeyedStore
}

func New(kv store.KeyedStore) *Store {
	return &Store{kv: kv}
}

// SetUser persists the user record. When the user carries a phone number it
// is also saved under a separate key that survives logout, so future logins
// can be prefilled.
func (s *Store) SetUser(u *model.User) {
	if u == nil {
		return
	}

	s.kv.Put(constants.KeyUser, u)

	if u.Phone != "" {
		s.kv.Put(constants.KeyLastPhone, u.Phone)
	}
}

// User returns the persisted user record, or nil when nobody is logged in.
func (s *Store) User() *model.User {
	var u model.User
	if !s.kv.Get(constants.KeyUser, &u) {
		return nil
	}
	return &u
}

// LastPhone returns the last known phone number, independent of the current
// session state. Empty when never set.
func (s *Store) LastPhone() string {
	var phone string
	if !s.kv.Get(constants.KeyLastPhone, &phone) {
		return ""
	}
	return phone
}

// Logout removes the user record and the balance. Transaction history and the
// last known phone stay: they are durable account history, not session state.
func (s *Store) Logout() {
	s.kv.Remove(constants.KeyUser)
	s.kv.Remove(constants.KeyBalance)
}

// SetBalance coerces v to a number before persisting. Non-numeric input
// becomes 0.
func (s *Store) SetBalance(v any) {
	s.kv.Put(constants.KeyBalance, utils.ToAmount(v))
}

// Balance returns 0 when unset.
func (s *Store) Balance() float64 {
	var balance float64
	if !s.kv.Get(constants.KeyBalance, &balance) {
		return 0
	}
	return balance
}

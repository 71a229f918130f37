package session

import (
	"testing"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoundTrip(t *testing.T) {
	s := New(store.NewMemoryStore())

	assert.Nil(t, s.User())

	s.SetUser(&model.User{FullName: "Ada", Phone: "0803000000"})

	user := s.User()
	require.NotNil(t, user)
	assert.Equal(t, "Ada", user.FullName)
	assert.Equal(t, "0803000000", user.Phone)
}

func TestSetUserRemembersLastPhone(t *testing.T) {
	s := New(store.NewMemoryStore())

	s.SetUser(&model.User{Phone: "0803000000"})
	assert.Equal(t, "0803000000", s.LastPhone())

	// A user without a phone does not clobber the remembered one.
	s.SetUser(&model.User{FullName: "Ada"})
	assert.Equal(t, "0803000000", s.LastPhone())
}

func TestBalanceCoercion(t *testing.T) {
	s := New(store.NewMemoryStore())

	assert.Equal(t, float64(0), s.Balance())

	s.SetBalance(42)
	assert.Equal(t, float64(42), s.Balance())

	s.SetBalance("abc")
	assert.Equal(t, float64(0), s.Balance())

	s.SetBalance("150.50")
	assert.Equal(t, 150.50, s.Balance())
}

func TestLogoutKeepsDurableRecords(t *testing.T) {
	kv := store.NewMemoryStore()
	s := New(kv)

	s.SetUser(&model.User{FullName: "Ada", Phone: "0803000000"})
	s.SetBalance(500)
	kv.Put(constants.KeyTransactions, []model.Transaction{{ID: "tx-1"}})

	s.Logout()

	assert.Nil(t, s.User())
	assert.Equal(t, float64(0), s.Balance())

	// History and the last phone survive the logout.
	assert.Equal(t, "0803000000", s.LastPhone())

	var records []model.Transaction
	require.True(t, kv.Get(constants.KeyTransactions, &records))
	assert.Len(t, records, 1)
}

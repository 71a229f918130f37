package ledger

import (
	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/session"
	"github.com/goldtrust/gtw/internal/store"
)

// Ledger is the order-preserving, newest-first list of transaction records.
// Records are normalized once at write time; corrections append a new record
// rather than mutating in place.
type Ledger struct {
	kv      store.KeyedStore
	session *session.Store
}

func New(kv store.KeyedStore, session *session.Store) *Ledger {
	return &Ledger{kv: kv, session: session}
}

// Append normalizes input and prepends it to the ledger. The normalized
// record is returned so callers can render a receipt without re-reading.
func (l *Ledger) Append(input model.TransactionInput) model.Transaction {
	record := l.normalize(input)

	records := l.List()
	records = append([]model.Transaction{record}, records...)
	l.kv.Put(constants.KeyTransactions, records)

	return record
}

// ReplaceAll overwrites the entire stored ledger. Used for administrative
// resets and imports; records are stored verbatim.
func (l *Ledger) ReplaceAll(records []model.Transaction) {
	if records == nil {
		records = []model.Transaction{}
	}
	l.kv.Put(constants.KeyTransactions, records)
}

// List returns the full ledger, newest-first. A missing or corrupted stored
// value yields an empty list.
func (l *Ledger) List() []model.Transaction {
	var records []model.Transaction
	if !l.kv.Get(constants.KeyTransactions, &records) {
		return []model.Transaction{}
	}
	if records == nil {
		return []model.Transaction{}
	}
	return records
}

// FindByID returns the record with the given id, or nil.
func (l *Ledger) FindByID(id string) *model.Transaction {
	for _, record := range l.List() {
		if record.ID == id {
			return &record
		}
	}
	return nil
}

// RemoveByID filters out any record with a matching id. Unknown ids are not
// an error.
func (l *Ledger) RemoveByID(id string) {
	records := l.List()

	filtered := make([]model.Transaction, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			filtered = append(filtered, record)
		}
	}

	l.kv.Put(constants.KeyTransactions, filtered)
}

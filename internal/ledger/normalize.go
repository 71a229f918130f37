package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/goldtrust/gtw/internal/constants"
	"github.com/goldtrust/gtw/internal/model"
	"github.com/goldtrust/gtw/internal/utils"
	"github.com/google/uuid"
)

// normalize coerces a loose input into the canonical record shape. Missing
// name and phone fall back to the current session user, so receipts always
// carry the buyer even when a flow only collected an amount.
func (l *Ledger) normalize(input model.TransactionInput) model.Transaction {
	record := model.Transaction{
		ID:        input.ID,
		Type:      input.Type,
		Amount:    utils.ToAmount(input.Amount),
		Status:    input.Status,
		CreatedAt: input.CreatedAt,
		FullName:  input.FullName,
		Phone:     input.Phone,
		Account:   input.Account,
		Bank:      input.Bank,
	}

	if record.ID == "" {
		record.ID = GenerateID()
	}
	if record.Type == "" {
		record.Type = constants.TxTypeUnknown
	}
	if record.Status == "" {
		record.Status = constants.StatusPending
	}
	if record.CreatedAt == "" {
		record.CreatedAt = time.Now().Format(time.RFC3339)
	}

	if record.FullName == "" {
		record.FullName = input.InitiatedBy
	}

	user := l.session.User()
	if record.FullName == "" && user != nil {
		record.FullName = user.FullName
	}
	if record.Phone == "" && user != nil {
		record.Phone = user.Phone
	}

	record.Meta = normalizeMeta(input.Meta)

	return record
}

// normalizeMeta keeps meta a mapping. A bare value (a remark string, a
// number) is wrapped as {note: value}.
func normalizeMeta(meta any) map[string]any {
	switch m := meta.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		if m == nil {
			return map[string]any{}
		}
		return m
	default:
		return map[string]any{"note": m}
	}
}

// GenerateID builds a ledger id like tx-1719238421000-a1b2c3.
func GenerateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("tx-%d-%s", time.Now().UnixMilli(), suffix)
}

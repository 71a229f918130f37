package model

// Transaction is the canonical ledger record. Every record read back from the
// ledger satisfies this shape; normalization happens once, at write time, so
// receipts and history views never need their own defensive defaults.
type Transaction struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Amount    float64        `json:"amount"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	FullName  string         `json:"fullName"`
	Phone     string         `json:"phone"`
	Meta      map[string]any `json:"meta"`
	Account   string         `json:"account,omitempty"`
	Bank      string         `json:"bank,omitempty"`
}

// TransactionInput is the loose, pre-normalization shape accepted by the
// ledger. Amount and Meta are deliberately untyped: flows hand over whatever
// they collected (strings from prompts, numbers, a bare remark) and the
// ledger coerces.
type TransactionInput struct {
	ID          string
	Type        string
	Amount      any
	Status      string
	CreatedAt   string
	FullName    string
	InitiatedBy string
	Phone       string
	Meta        any
	Account     string
	Bank        string
}

package model

// PendingWithdraw is the single-slot record for an in-flight withdrawal.
// Writing the slot replaces any prior value.
type PendingWithdraw struct {
	Account   string         `json:"account"`
	Bank      string         `json:"bank"`
	Amount    float64        `json:"amount"`
	CreatedAt string         `json:"created_at"`
	Meta      map[string]any `json:"meta"`
}

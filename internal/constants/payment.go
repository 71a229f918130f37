package constants

const (
	// Transaction types
	TxTypeUnknown  = "unknown"
	TxTypeBuyCode  = "buy_code"
	TxTypeTopup    = "topup"
	TxTypeWithdraw = "withdraw"

	// Transaction status
	StatusPending = "pending"

	// Payment flow defaults
	DefaultConfirmWindowSeconds = 600
	DefaultVerifyDelayMillis    = 1200
)

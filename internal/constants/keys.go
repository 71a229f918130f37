package constants

// Storage keys. The flat namespace is shared with the original web wallet,
// so the gt_ prefix is kept for records that may be migrated across.
const (
	KeyUser            = "gt_user"
	KeyBalance         = "gt_balance"
	KeyTransactions    = "gt_transactions"
	KeyPendingWithdraw = "gt_pending_withdraw"
	KeyLastPhone       = "gt_last_phone"
)

package domain

type TransactionType string

const (
	TransactionSale   TransactionType = "sale"
	TransactionPayout TransactionType = "payout"
)

// Transaction is a ledger entry on the farmer account. Order is set for
// sales, Reference for payouts.
type Transaction struct {
	Date      string          `json:"date"`
	Amount    float64         `json:"amount"`
	Type      TransactionType `json:"type"`
	Order     int64           `json:"order,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

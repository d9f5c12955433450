package domain

// PaymentMethod is static reference data; Bank is empty for mobile money.
type PaymentMethod struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Bank   string `json:"bank,omitempty"`
}

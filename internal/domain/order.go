package domain

type OrderStatus string

const (
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is an immutable record of a completed checkout. IDs are sequential
// within a session, assigned at creation.
type Order struct {
	ID     int64       `json:"id"`
	Items  []string    `json:"items"`
	Total  float64     `json:"total"`
	Date   string      `json:"date"` // YYYY-MM-DD
	Status OrderStatus `json:"status"`
}

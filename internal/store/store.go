package store

import (
	"context"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

// OrderStore persists orders completed by USSD sessions.
type OrderStore interface {
	// SaveOrder appends one completed order.
	SaveOrder(ctx context.Context, order domain.Order) error

	// ListOrders returns every stored order in insertion order.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// Close shuts down the store.
	Close() error
}

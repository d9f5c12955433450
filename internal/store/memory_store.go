package store

import (
	"context"
	"sync"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

// MemoryStore implements OrderStore with in-memory storage. It backs the CLI
// simulator and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveOrder(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]string, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	s.orders = append(s.orders, order)
	return nil
}

func (s *MemoryStore) ListOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

func TestMemoryStore_SaveAndList(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveOrder(ctx, domain.Order{
		ID:     1,
		Items:  []string{"Tomatoes (2)"},
		Total:  37.98,
		Date:   "2023-06-15",
		Status: domain.OrderStatusDelivered,
	}))
	require.NoError(t, s.SaveOrder(ctx, domain.Order{
		ID:     2,
		Items:  []string{"Spinach (1)"},
		Total:  24.50,
		Date:   "2023-06-16",
		Status: domain.OrderStatusDelivered,
	}))

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, []string{"Spinach (1)"}, orders[1].Items)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.SaveOrder(ctx, domain.Order{ID: 1, Items: []string{"Apples (3)"}, Total: 38.97, Date: "2023-06-15", Status: domain.OrderStatusDelivered}))

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	orders[0].Total = 0

	again, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 38.97, again[0].Total, 0.001)
}

func TestMemoryStore_EmptyList(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	orders, err := s.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

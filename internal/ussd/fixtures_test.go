package ussd

import (
	"time"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

// testClock pins the session clock inside June 2023, the month of the second
// seeded order.
func testClock() time.Time {
	return time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func testSeed() Seed {
	return Seed{
		Products: []domain.Product{
			{ID: 1, Name: "Tomatoes", Price: 18.99, Stock: 50, Category: domain.CategoryVegetables, Farmer: "Green Valley Farm"},
			{ID: 2, Name: "Spinach", Price: 24.50, Stock: 30, Category: domain.CategoryVegetables, Farmer: "Green Valley Farm"},
			{ID: 3, Name: "Carrots", Price: 21.99, Stock: 40, Category: domain.CategoryVegetables, Farmer: "Sunny Acres"},
			{ID: 4, Name: "Strawberries", Price: 35.50, Stock: 20, Category: domain.CategoryFruits, Farmer: "Berry Good Farms"},
			{ID: 5, Name: "Apples", Price: 12.99, Stock: 35, Category: domain.CategoryFruits, Farmer: "Orchard Fresh"},
			{ID: 6, Name: "Free Range Eggs", Price: 45.00, Stock: 15, Category: domain.CategoryEggs, Farmer: "Happy Hens"},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: 1, Name: "Mobile Money", Number: "0821234567"},
			{ID: 2, Name: "Bank Transfer", Number: "1234567890", Bank: "Standard Bank"},
		},
		Orders: []domain.Order{
			{ID: 1, Items: []string{"Tomatoes (2kg)", "Carrots (1kg)"}, Total: 59.97, Date: "2023-05-15", Status: domain.OrderStatusDelivered},
			{ID: 2, Items: []string{"Strawberries (1 box)", "Apples (3kg)"}, Total: 84.47, Date: "2023-06-02", Status: domain.OrderStatusDelivered},
		},
		Transactions: []domain.Transaction{
			{Date: "2023-06-28", Amount: 45.00, Type: domain.TransactionSale, Order: 2},
			{Date: "2023-06-15", Amount: 59.97, Type: domain.TransactionSale, Order: 1},
			{Date: "2023-05-30", Amount: -200.00, Type: domain.TransactionPayout, Reference: "PAY12345"},
		},
		Balance: 1845.97,
	}
}

func newTestState() *State {
	return newState(testSeed(), testClock)
}

// apply runs a sequence of inputs through dispatch, returning the final
// state.
func apply(st *State, inputs ...string) *State {
	for _, in := range inputs {
		st = dispatch(st, in).state
	}
	return st
}

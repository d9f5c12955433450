package ussd

import (
	"time"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

type UserType string

const (
	UserConsumer UserType = "consumer"
	UserFarmer   UserType = "farmer"
)

// Seed is the startup data a session begins from: the product catalog, the
// configured payment methods, historical orders and ledger entries, and the
// opening account balance.
type Seed struct {
	Products       []domain.Product
	PaymentMethods []domain.PaymentMethod
	Orders         []domain.Order
	Transactions   []domain.Transaction
	Balance        float64
}

// State is one session's full record. Transitions never mutate a State in
// place; dispatch clones it first, so a previous State stays valid for
// comparison.
type State struct {
	CurrentMenu          MenuID
	UserType             UserType
	Cart                 domain.Cart
	Products             []domain.Product
	Orders               []domain.Order
	Balance              float64
	PaymentMethods       []domain.PaymentMethod
	CurrentCategory      string
	CurrentProduct       *domain.Product
	CurrentPaymentMethod *domain.PaymentMethod
	Transactions         []domain.Transaction

	now func() time.Time
}

func newState(seed Seed, now func() time.Time) *State {
	return &State{
		CurrentMenu:    MenuMain,
		Cart:           domain.Cart{},
		Products:       cloneProducts(seed.Products),
		Orders:         cloneOrders(seed.Orders),
		Balance:        seed.Balance,
		PaymentMethods: clonePaymentMethods(seed.PaymentMethods),
		Transactions:   cloneTransactions(seed.Transactions),
		now:            now,
	}
}

func (st *State) clock() time.Time {
	if st.now == nil {
		return time.Now()
	}
	return st.now()
}

// clone deep-copies every slice so the result shares nothing mutable with
// the receiver.
func (st *State) clone() *State {
	next := *st
	next.Cart = st.Cart.Clone()
	next.Products = cloneProducts(st.Products)
	next.Orders = cloneOrders(st.Orders)
	next.PaymentMethods = clonePaymentMethods(st.PaymentMethods)
	next.Transactions = cloneTransactions(st.Transactions)
	if st.CurrentProduct != nil {
		p := *st.CurrentProduct
		next.CurrentProduct = &p
	}
	if st.CurrentPaymentMethod != nil {
		m := *st.CurrentPaymentMethod
		next.CurrentPaymentMethod = &m
	}
	return &next
}

func cloneProducts(in []domain.Product) []domain.Product {
	if in == nil {
		return nil
	}
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}

func cloneOrders(in []domain.Order) []domain.Order {
	if in == nil {
		return nil
	}
	out := make([]domain.Order, len(in))
	for i, o := range in {
		items := make([]string, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		out[i] = o
	}
	return out
}

func clonePaymentMethods(in []domain.PaymentMethod) []domain.PaymentMethod {
	if in == nil {
		return nil
	}
	out := make([]domain.PaymentMethod, len(in))
	copy(out, in)
	return out
}

func cloneTransactions(in []domain.Transaction) []domain.Transaction {
	if in == nil {
		return nil
	}
	out := make([]domain.Transaction, len(in))
	copy(out, in)
	return out
}

package ussd

import (
	"fmt"
	"strconv"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

const (
	inputBack = "0"
	inputExit = "00"
)

// parentOf designates where "0" leads from each menu.
var parentOf = map[MenuID]MenuID{
	MenuConsumer:        MenuMain,
	MenuBrowseProducts:  MenuConsumer,
	MenuProductCategory: MenuBrowseProducts,
	MenuProductDetail:   MenuProductCategory,
	MenuCart:            MenuConsumer,
	MenuCheckout:        MenuCart,
	MenuPaymentMethods:  MenuCheckout,
	MenuPaymentConfirm:  MenuCheckout,
	MenuOrderHistory:    MenuConsumer,
	MenuFarmer:          MenuMain,
	MenuFarmerProducts:  MenuFarmer,
	MenuViewProducts:    MenuFarmerProducts,
	MenuFarmerOrders:    MenuFarmer,
	MenuSalesAnalytics:  MenuFarmer,
	MenuPaymentSettings: MenuFarmer,
	MenuAccountBalance:  MenuFarmer,
}

// result is the outcome of one dispatched input: the next state, an optional
// notification, an optional completed order for the order sink, and whether
// a full session reset should be scheduled.
type result struct {
	state *State
	notif *Notification
	order *domain.Order
	reset bool
}

func unchanged(st *State, n *Notification) result {
	return result{state: st, notif: n}
}

func invalidOption(st *State) result {
	return unchanged(st, notify("Invalid option. Please try again.", KindDanger))
}

func farewell(st *State) result {
	return result{
		state: st,
		notif: notify("Thank you for using Farm2City!", KindSuccess),
		reset: true,
	}
}

// dispatch applies the one transition rule matching (currentMenu, input).
// It never mutates st; accepted transitions operate on a clone.
func dispatch(st *State, input string) result {
	// The farmer demo screens consume every input, including 0 and 00.
	switch st.CurrentMenu {
	case MenuAddProduct:
		return addDemoProduct(st)
	case MenuEditProduct:
		return editFirstProduct(st)
	case MenuDeleteProduct:
		return deleteLastProduct(st)
	}

	if input == inputExit {
		switch st.CurrentMenu {
		case MenuMain, MenuConsumer, MenuFarmer:
			return farewell(st)
		}
		return goTo(st, MenuMain)
	}
	if input == inputBack {
		if parent, ok := parentOf[st.CurrentMenu]; ok {
			return goTo(st, parent)
		}
	}

	switch st.CurrentMenu {
	case MenuMain:
		switch input {
		case "1":
			next := st.clone()
			next.UserType = UserConsumer
			next.CurrentMenu = MenuConsumer
			return result{state: next}
		case "2":
			next := st.clone()
			next.UserType = UserFarmer
			next.CurrentMenu = MenuFarmer
			return result{state: next}
		}
		return invalidOption(st)

	case MenuConsumer:
		switch input {
		case "1":
			return goTo(st, MenuBrowseProducts)
		case "2":
			return goTo(st, MenuCart)
		case "3":
			if st.Cart.IsEmpty() {
				return unchanged(st, notify("Your cart is empty.", KindWarning))
			}
			return goTo(st, MenuCheckout)
		case "4":
			return goTo(st, MenuOrderHistory)
		}
		return invalidOption(st)

	case MenuBrowseProducts:
		switch input {
		case "1", "2", "3", "4":
			next := st.clone()
			next.CurrentCategory = categoryLabels[int(input[0]-'0')-1]
			next.CurrentMenu = MenuProductCategory
			return result{state: next}
		}
		return invalidOption(st)

	case MenuProductCategory:
		products := filterByLabel(st.Products, st.CurrentCategory)
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(products) {
			next := st.clone()
			p := products[n-1]
			next.CurrentProduct = &p
			next.CurrentMenu = MenuProductDetail
			return result{state: next}
		}
		return unchanged(st, nil) // out of range is silently ignored here

	case MenuProductDetail:
		switch input {
		case "1":
			if st.CurrentProduct == nil {
				return unchanged(st, nil)
			}
			next := st.clone()
			next.Cart.Add(*next.CurrentProduct)
			return result{state: next, notif: notify("Added to cart!", KindSuccess)}
		case "2":
			if st.CurrentProduct == nil {
				return unchanged(st, nil)
			}
			return unchanged(st, notify(fmt.Sprintf("Farmer: %s", st.CurrentProduct.Farmer), KindInfo))
		}
		return invalidOption(st)

	case MenuCart:
		switch input {
		case "1":
			if st.Cart.IsEmpty() {
				return unchanged(st, notify("Your cart is empty.", KindWarning))
			}
			return goTo(st, MenuCheckout)
		case "2":
			if st.Cart.IsEmpty() {
				return unchanged(st, notify("Cart is empty.", KindWarning))
			}
			next := st.clone()
			next.Cart.RemoveLast()
			return result{state: next, notif: notify("Last item removed.", KindInfo)}
		case "3":
			next := st.clone()
			next.Cart.Clear()
			return result{state: next, notif: notify("Cart cleared.", KindInfo)}
		}
		return invalidOption(st)

	case MenuCheckout:
		switch input {
		case "1":
			return goTo(st, MenuPaymentMethods)
		case "2":
			return goTo(st, MenuCart)
		}
		return invalidOption(st)

	case MenuPaymentMethods:
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(st.PaymentMethods) {
			next := st.clone()
			m := st.PaymentMethods[n-1]
			next.CurrentPaymentMethod = &m
			next.CurrentMenu = MenuPaymentConfirm
			return result{state: next}
		}
		return unchanged(st, nil)

	case MenuPaymentConfirm:
		switch input {
		case "1":
			return confirmPayment(st)
		case "2":
			return goTo(st, MenuPaymentMethods)
		}
		return invalidOption(st)

	case MenuFarmer:
		switch input {
		case "1":
			return goTo(st, MenuFarmerProducts)
		case "2":
			return goTo(st, MenuFarmerOrders)
		case "3":
			return goTo(st, MenuSalesAnalytics)
		case "4":
			return goTo(st, MenuPaymentSettings)
		case "5":
			return goTo(st, MenuAccountBalance)
		}
		return invalidOption(st)

	case MenuFarmerProducts:
		switch input {
		case "1":
			return goTo(st, MenuViewProducts)
		case "2":
			return goTo(st, MenuAddProduct)
		case "3":
			return goTo(st, MenuEditProduct)
		case "4":
			return goTo(st, MenuDeleteProduct)
		}
		return invalidOption(st)

	case MenuAccountBalance:
		switch input {
		case "1":
			return unchanged(st, notify("Payout requested!", KindSuccess))
		case "2":
			return unchanged(st, notify("Transaction history shown.", KindInfo))
		}
		return invalidOption(st)

	case MenuOrderHistory, MenuViewProducts, MenuFarmerOrders, MenuSalesAnalytics, MenuPaymentSettings:
		// Navigation-only screens ignore anything but 0 and 00.
		return unchanged(st, nil)
	}

	return invalidOption(st)
}

func goTo(st *State, id MenuID) result {
	next := st.clone()
	next.CurrentMenu = id
	return result{state: next}
}

// confirmPayment converts the cart into an order, empties the cart, and
// lands back on the consumer menu.
func confirmPayment(st *State) result {
	next := st.clone()
	items := make([]string, 0, next.Cart.Len())
	for _, l := range next.Cart.Lines {
		items = append(items, fmt.Sprintf("%s (%d)", l.Name, l.Qty))
	}
	order := domain.Order{
		ID:     int64(len(next.Orders) + 1),
		Items:  items,
		Total:  next.Cart.Total(),
		Date:   next.clock().Format("2006-01-02"),
		Status: domain.OrderStatusDelivered,
	}
	next.Orders = append(next.Orders, order)
	next.Cart.Clear()
	next.CurrentMenu = MenuConsumer
	return result{
		state: next,
		notif: notify("Payment successful!", KindSuccess),
		order: &order,
	}
}

func addDemoProduct(st *State) result {
	next := st.clone()
	n := len(next.Products) + 1
	next.Products = append(next.Products, domain.Product{
		ID:       int64(n),
		Name:     fmt.Sprintf("New Product %d", n),
		Price:    10.0,
		Stock:    10,
		Category: domain.CategoryOther,
		Farmer:   "Demo Farmer",
	})
	next.CurrentMenu = MenuFarmerProducts
	return result{state: next, notif: notify("Product added!", KindSuccess)}
}

func editFirstProduct(st *State) result {
	next := st.clone()
	var n *Notification
	if len(next.Products) > 0 {
		next.Products[0].Name += " (Edited)"
		n = notify("First product edited!", KindInfo)
	}
	next.CurrentMenu = MenuFarmerProducts
	return result{state: next, notif: n}
}

func deleteLastProduct(st *State) result {
	next := st.clone()
	var n *Notification
	if len(next.Products) > 0 {
		next.Products = next.Products[:len(next.Products)-1]
		n = notify("Last product deleted!", KindDanger)
	}
	next.CurrentMenu = MenuFarmerProducts
	return result{state: next, notif: n}
}

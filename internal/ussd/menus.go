package ussd

import (
	"fmt"
	"strings"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

type MenuID string

const (
	MenuMain            MenuID = "main"
	MenuConsumer        MenuID = "consumer"
	MenuFarmer          MenuID = "farmer"
	MenuBrowseProducts  MenuID = "browseProducts"
	MenuProductCategory MenuID = "productCategory"
	MenuProductDetail   MenuID = "productDetail"
	MenuCart            MenuID = "cart"
	MenuCheckout        MenuID = "checkout"
	MenuPaymentMethods  MenuID = "paymentMethods"
	MenuPaymentConfirm  MenuID = "paymentConfirm"
	MenuOrderHistory    MenuID = "orderHistory"
	MenuFarmerProducts  MenuID = "farmerProducts"
	MenuFarmerOrders    MenuID = "farmerOrders"
	MenuSalesAnalytics  MenuID = "salesAnalytics"
	MenuPaymentSettings MenuID = "paymentSettings"
	MenuAccountBalance  MenuID = "accountBalance"
	MenuViewProducts    MenuID = "viewProducts"
	MenuAddProduct      MenuID = "addProduct"
	MenuEditProduct     MenuID = "editProduct"
	MenuDeleteProduct   MenuID = "deleteProduct"
)

// Category labels as presented on the browse screen, selection order 1..4.
var categoryLabels = []string{"Vegetables", "Fruits", "Eggs & Dairy", "All Products"}

// allProducts is the pseudo-category matching every catalog entry.
const allProducts = "all"

var categoryMap = map[string]string{
	"Vegetables":   string(domain.CategoryVegetables),
	"Fruits":       string(domain.CategoryFruits),
	"Eggs & Dairy": string(domain.CategoryEggs),
	"All Products": allProducts,
}

// filterByLabel narrows the catalog to the mapped category. Unknown labels
// fall back to the full catalog.
func filterByLabel(products []domain.Product, label string) []domain.Product {
	cat, ok := categoryMap[label]
	if !ok {
		cat = allProducts
	}
	if cat == allProducts {
		return products
	}
	var out []domain.Product
	for _, p := range products {
		if string(p.Category) == cat {
			out = append(out, p)
		}
	}
	return out
}

func rands(v float64) string {
	return fmt.Sprintf("R%.2f", v)
}

// A registry entry is either fixed text or a function of the session state
// plus menu-specific context. The renderer selects the context by menu id.
type menuEntry interface {
	menuEntry()
}

type staticMenu string
type stateMenu func(st *State) string
type categoryMenu func(category string, st *State) string
type productMenu func(p domain.Product, st *State) string
type totalMenu func(total float64, st *State) string
type paymentMenu func(m domain.PaymentMethod, total float64, st *State) string

func (staticMenu) menuEntry()   {}
func (stateMenu) menuEntry()    {}
func (categoryMenu) menuEntry() {}
func (productMenu) menuEntry()  {}
func (totalMenu) menuEntry()    {}
func (paymentMenu) menuEntry()  {}

var menus = map[MenuID]menuEntry{
	MenuMain: staticMenu(`
Welcome to Farm2City
==========================
1. Consumer
2. Farmer

00. Exit
`),

	MenuConsumer: stateMenu(func(st *State) string {
		return fmt.Sprintf(`
Consumer Menu
=============
1. Browse Products
2. My Cart (%d)
3. Checkout
4. Order History

0. Main Menu
00. Exit
`, st.Cart.Len())
	}),

	MenuFarmer: stateMenu(func(st *State) string {
		return fmt.Sprintf(`
Farmer Dashboard
===============
1. Product Management
2. Order Management
3. Sales Analytics
4. Payment Settings
5. Account (%s)

0. Main Menu
00. Exit
`, rands(st.Balance))
	}),

	MenuBrowseProducts: staticMenu(`
Browse Products
===============
1. Vegetables
2. Fruits
3. Eggs & Dairy
4. All Products

0. Back
00. Main Menu
`),

	MenuProductCategory: categoryMenu(func(category string, st *State) string {
		products := filterByLabel(st.Products, category)
		var b strings.Builder
		fmt.Fprintf(&b, "\n%s Available\n%s\n", category, strings.Repeat("=", len(category)+9))
		for i, p := range products {
			fmt.Fprintf(&b, "%d. %s - %s (%d left)\n", i+1, p.Name, rands(p.Price), p.Stock)
		}
		b.WriteString("\n0. Back\n00. Main Menu\n")
		return b.String()
	}),

	MenuProductDetail: productMenu(func(p domain.Product, st *State) string {
		return fmt.Sprintf(`
%s
%s
Price: %s
Stock: %d
Category: %s

1. Add to Cart
2. View Farmer Info

0. Back
00. Main Menu
`, p.Name, strings.Repeat("=", len(p.Name)), rands(p.Price), p.Stock, p.Category.Title())
	}),

	MenuCart: stateMenu(func(st *State) string {
		var b strings.Builder
		b.WriteString("\nYour Shopping Cart\n=================\n")
		if st.Cart.IsEmpty() {
			b.WriteString("Your cart is empty\n")
		} else {
			for i, l := range st.Cart.Lines {
				fmt.Fprintf(&b, "%d. %s x%d - %s\n", i+1, l.Name, l.Qty, rands(l.Subtotal()))
			}
			fmt.Fprintf(&b, "\nTotal: %s\n", rands(st.Cart.Total()))
		}
		b.WriteString("\n1. Checkout\n2. Remove Item\n3. Clear Cart\n\n0. Back\n00. Main Menu\n")
		return b.String()
	}),

	MenuCheckout: totalMenu(func(total float64, st *State) string {
		return fmt.Sprintf(`
Confirm Order
============
Items: %d
Total: %s

1. Proceed to Payment
2. Change Order

0. Back
00. Main Menu
`, st.Cart.Len(), rands(total))
	}),

	MenuPaymentMethods: stateMenu(func(st *State) string {
		var b strings.Builder
		b.WriteString("\nSelect Payment Method\n====================\n")
		for i, m := range st.PaymentMethods {
			fmt.Fprintf(&b, "%d. %s", i+1, m.Name)
			if m.Bank != "" {
				fmt.Fprintf(&b, " (%s)", m.Bank)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n0. Back\n00. Main Menu\n")
		return b.String()
	}),

	MenuPaymentConfirm: paymentMenu(func(m domain.PaymentMethod, total float64, st *State) string {
		account := fmt.Sprintf("Number: %s", m.Number)
		if m.Bank != "" {
			account = fmt.Sprintf("Bank: %s\nAccount: %s", m.Bank, m.Number)
		}
		return fmt.Sprintf(`
Confirm Payment
==============
Amount: %s
Method: %s
%s

1. Confirm Payment
2. Change Method

0. Cancel
`, rands(total), m.Name, account)
	}),

	MenuOrderHistory: stateMenu(func(st *State) string {
		var b strings.Builder
		b.WriteString("\nOrder History\n=============\n")
		if len(st.Orders) == 0 {
			b.WriteString("No orders yet\n")
		}
		for i, o := range st.Orders {
			fmt.Fprintf(&b, "%d. Order #%d - %s (%s)\n", i+1, o.ID, rands(o.Total), o.Date)
		}
		b.WriteString("\n0. Back\n00. Main Menu\n")
		return b.String()
	}),

	MenuFarmerProducts: staticMenu(`
Product Management
=================
1. View All Products
2. Add New Product
3. Edit Product
4. Delete Product

0. Back
00. Main Menu
`),

	MenuFarmerOrders: staticMenu(`
Order Management
===============
1. View All Orders
2. View Pending
3. View Completed
4. Update Status

0. Back
00. Main Menu
`),

	MenuSalesAnalytics: stateMenu(func(st *State) string {
		var total, month float64
		prefix := st.clock().Format("2006-01")
		for _, o := range st.Orders {
			total += o.Total
			if strings.Contains(o.Date, prefix) {
				month += o.Total
			}
		}
		return fmt.Sprintf(`
Sales Analytics
==============
Total Sales: %s
Total Orders: %d
This Month: %s

1. Sales Report
2. Popular Items

0. Back
00. Main Menu
`, rands(total), len(st.Orders), rands(month))
	}),

	MenuPaymentSettings: staticMenu(`
Payment Settings
===============
1. View Methods
2. Add Method
3. Remove Method

0. Back
00. Main Menu
`),

	MenuAccountBalance: stateMenu(func(st *State) string {
		return fmt.Sprintf(`
Account Balance
==============
Available: %s
Pending: R0.00

1. Request Payout
2. Transaction History

0. Back
00. Main Menu
`, rands(st.Balance))
	}),

	MenuViewProducts: stateMenu(func(st *State) string {
		var b strings.Builder
		b.WriteString("\nAll Products\n============\n")
		for i, p := range st.Products {
			fmt.Fprintf(&b, "%d. %s - %s (%d left)\n", i+1, p.Name, rands(p.Price), p.Stock)
		}
		b.WriteString("\n0. Back\n00. Main Menu\n")
		return b.String()
	}),

	// The three demo screens below consume any input, so they advertise no
	// numbered options.
	MenuAddProduct: staticMenu(`
Add New Product
===============
Send any option to add a demo product.
`),

	MenuEditProduct: staticMenu(`
Edit Product
============
Send any option to edit the first product.
`),

	MenuDeleteProduct: staticMenu(`
Delete Product
==============
Send any option to delete the last product.
`),
}

package ussd

const menuNotFound = "Menu not found"

// Render projects the session state onto the current menu's registry entry,
// supplying the context argument each dynamic menu expects. Unknown menu ids
// render a placeholder rather than failing.
func Render(st *State) string {
	entry, ok := menus[st.CurrentMenu]
	if !ok {
		return menuNotFound
	}
	switch m := entry.(type) {
	case staticMenu:
		return string(m)
	case stateMenu:
		return m(st)
	case categoryMenu:
		label := st.CurrentCategory
		if label == "" {
			label = "All Products"
		}
		return m(label, st)
	case productMenu:
		if st.CurrentProduct == nil {
			return menuNotFound
		}
		return m(*st.CurrentProduct, st)
	case totalMenu:
		return m(st.Cart.Total(), st)
	case paymentMenu:
		if st.CurrentPaymentMethod == nil {
			return menuNotFound
		}
		return m(*st.CurrentPaymentMethod, st.Cart.Total(), st)
	default:
		return menuNotFound
	}
}

// Header mirrors the phone header line: the product name on the detail
// screen, otherwise the service name with the chosen role.
func Header(st *State) string {
	if st.UserType != "" {
		return "Farm2City (" + string(st.UserType) + ")"
	}
	if st.CurrentMenu == MenuProductDetail && st.CurrentProduct != nil {
		return st.CurrentProduct.Name
	}
	return "Farm2City"
}

package domain

// CartLine is one product staged for purchase. A cart holds at most one line
// per product id; adding the same product again bumps Qty instead.
type CartLine struct {
	Product
	Qty int
}

// Subtotal is the line price, price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Qty)
}

type Cart struct {
	Lines []CartLine
}

func (c Cart) Len() int {
	return len(c.Lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total is recomputed on every call, never cached.
func (c Cart) Total() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Subtotal()
	}
	return sum
}

// Add puts the product in the cart with quantity 1, or increments the
// quantity of the existing line with the same product id.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ID == p.ID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Qty: 1})
}

// RemoveLast pops the most recently added line. Returns false on an empty
// cart.
func (c *Cart) RemoveLast() bool {
	if len(c.Lines) == 0 {
		return false
	}
	c.Lines = c.Lines[:len(c.Lines)-1]
	return true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Clone returns a cart whose lines do not alias the receiver's backing
// array.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

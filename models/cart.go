package models

// CartLine is one distinct catalog item and its requested quantity.
type CartLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// Total is the discounted line total: price * (1 - disc/100) * quantity.
func (l CartLine) Total() float64 {
	return l.Item.DiscountedPrice() * float64(l.Quantity)
}

// Cart is the wire shape returned by the cart endpoints.
type Cart struct {
	Lines      []CartLine `json:"lines"`
	TotalPrice float64    `json:"total_price"`
}

// AddCartItemRequest adds quantity units of an item to the cart.
type AddCartItemRequest struct {
	Item     Item `json:"item" binding:"required"`
	Quantity int  `json:"quantity"`
}

// UpdateCartItemRequest sets the absolute quantity of a line. Zero or a
// negative value removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

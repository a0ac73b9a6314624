package models

// CartItem is one line of the client cart. Identity key is the product ID;
// at most one entry per product exists in a cart, adds merge by incrementing
// the quantity.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	PriceID  string  `json:"price_id,omitempty"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart is the serialized snapshot shape persisted per session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total returns the cart subtotal over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the summed quantity over all lines.
func (c Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

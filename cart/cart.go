// Package cart holds the mutable in-memory cart and the checkout settlement
// that turns it into a transaction request. Nothing here touches the network
// or the database; clearing the cart after a successful commit is the
// caller's job.
package cart

import (
	"pos-service/model"
	"pos-service/pricing"
)

// Item is one product line in the cart, with price and discount snapshotted
// at the moment the product was added.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     int64           `json:"price"`
	Quantity  int             `json:"quantity"`
	Discount  *model.Discount `json:"discount,omitempty"`
}

// Cart keeps line items in insertion order. It is not safe for concurrent
// use; a till drives it from a single loop.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts the product in the cart with quantity 1, or bumps the quantity if
// a line for the same product already exists.
func (c *Cart) Add(p model.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
		Discount:  p.Discount,
	})
}

// SetQuantity sets the line's quantity. Zero or negative removes the line;
// a zero-quantity line is never kept around.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// Remove drops the line if present, no-op otherwise.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the amount due: discounted unit price times quantity, summed.
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		discounted, _ := pricing.Apply(it.Price, it.Discount)
		total += discounted * int64(it.Quantity)
	}
	return total
}

// TotalDiscount is the amount cut off the undiscounted sum. At all times
// Total() + TotalDiscount() equals the sum of price*quantity over the lines.
func (c *Cart) TotalDiscount() int64 {
	var total int64
	for _, it := range c.items {
		_, amount := pricing.Apply(it.Price, it.Discount)
		total += amount * int64(it.Quantity)
	}
	return total
}

// Package pricing computes discounted prices for the cart, checkout and
// receipt layers. All money is in rupiah as plain int64, no fractions.
package pricing

import "pos-service/model"

// Apply returns the discounted unit price and the discount amount per unit
// for the given base price and optional descriptor.
//
// Percentage discounts floor the cut (price * value / 100 in integer math).
// Fixed discounts are capped at the base price. The result is never negative:
// a cut larger than the price clamps to a free item. A nil descriptor, an
// unknown type or a negative value all mean "no discount".
func Apply(price int64, d *model.Discount) (discounted, amount int64) {
	if d == nil || d.Amount <= 0 {
		return price, 0
	}
	switch d.Type {
	case model.DiscountPercentage:
		amount = price * d.Amount / 100
	case model.DiscountFixed:
		amount = d.Amount
	default:
		return price, 0
	}
	if amount > price {
		amount = price
	}
	return price - amount, amount
}

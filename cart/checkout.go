package cart

import (
	"errors"
	"time"

	"pos-service/model"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientPayment  = errors.New("amount paid is less than total")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Settle turns the cart into a TransactionRequest ready to submit.
//
// amountPaid == nil means the exact amount due was tendered (the common case
// for transfer payments). Cash with change below zero is rejected here,
// before anything leaves the till; transfer is assumed verified out of band
// and may settle under the total. The cart itself is not touched.
func Settle(c *Cart, customerID string, method model.PaymentMethod, amountPaid *int64) (*model.TransactionRequest, error) {
	if method != model.PaymentCash && method != model.PaymentTransfer {
		return nil, ErrUnknownPaymentMethod
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	total := c.Total()
	paid := total
	if amountPaid != nil {
		paid = *amountPaid
	}
	change := paid - total

	if method == model.PaymentCash && change < 0 {
		return nil, ErrInsufficientPayment
	}

	items := make([]model.TransactionRequestItem, 0, c.Len())
	for _, it := range c.Items() {
		items = append(items, model.TransactionRequestItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Discount:  it.Discount,
		})
	}

	return &model.TransactionRequest{
		CustomerID:    customerID,
		Items:         items,
		Total:         total,
		TotalDiscount: c.TotalDiscount(),
		AmountPaid:    paid,
		Change:        change,
		PaymentMethod: method,
		CreatedAt:     time.Now(),
	}, nil
}

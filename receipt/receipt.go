// Package receipt projects a persisted transaction into a printable view.
// The projection is pure and never fails: missing optional fields come out
// as blank sections.
package receipt

import (
	"time"

	"pos-service/model"
	"pos-service/pricing"
)

type Line struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	BasePrice int64  `json:"base_price"`
	UnitPrice int64  `json:"unit_price"` // after discount
	Discount  int64  `json:"discount"`   // for the whole line
	Subtotal  int64  `json:"subtotal"`
}

type View struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	CustomerName  string    `json:"customer_name,omitempty"`
	Lines         []Line    `json:"lines"`
	Total         int64     `json:"total"`
	TotalDiscount int64     `json:"total_discount"`
	ShowDiscount  bool      `json:"show_discount"`
	AmountPaid    int64     `json:"amount_paid"`
	Change        int64     `json:"change"`
	ShowChange    bool      `json:"show_change"`
	PaymentMethod string    `json:"payment_method"`
	PaymentLabel  string    `json:"payment_label"`
}

// Project builds the receipt view. Per-line figures are re-derived from the
// frozen discount descriptors, so the sum of subtotals plus the header's
// total discount always reproduces the header total.
func Project(t *model.Transaction) View {
	lines := make([]Line, 0, len(t.Items))
	for _, it := range t.Items {
		unit, cut := pricing.Apply(it.Price, it.Discount)
		lines = append(lines, Line{
			Name:      it.Name,
			Quantity:  it.Quantity,
			BasePrice: it.Price,
			UnitPrice: unit,
			Discount:  cut * int64(it.Quantity),
			Subtotal:  unit * int64(it.Quantity),
		})
	}
	return View{
		TransactionID: t.ID,
		Date:          t.CreatedAt,
		CustomerName:  t.CustomerName,
		Lines:         lines,
		Total:         t.Total,
		TotalDiscount: t.TotalDiscount,
		ShowDiscount:  t.TotalDiscount > 0,
		AmountPaid:    t.AmountPaid,
		Change:        t.Change,
		ShowChange:    t.Change > 0,
		PaymentMethod: string(t.PaymentMethod),
		PaymentLabel:  paymentLabel(t.PaymentMethod),
	}
}

func paymentLabel(m model.PaymentMethod) string {
	switch m {
	case model.PaymentCash:
		return "Tunai"
	case model.PaymentTransfer:
		return "Transfer"
	default:
		return string(m)
	}
}

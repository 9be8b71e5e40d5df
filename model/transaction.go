package model

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// Transaction is the immutable record of a completed sale. There is no
// update or delete path for it anywhere in the service.
type Transaction struct {
	ID             string            `gorm:"primaryKey" json:"id"`
	OwnerID        string            `gorm:"index" json:"owner_id"`
	CustomerID     string            `json:"customer_id,omitempty"`
	Total          int64             `json:"total"`
	TotalDiscount  int64             `json:"total_discount"`
	AmountPaid     int64             `json:"amount_paid"`
	Change         int64             `json:"change"`
	PaymentMethod  PaymentMethod     `json:"payment_method"`
	IdempotencyKey *string           `gorm:"uniqueIndex" json:"-"`
	Items          []TransactionItem `gorm:"foreignKey:TransactionID" json:"items"`
	CreatedAt      time.Time         `json:"created_at"`

	// joined from Customer at read time; a dangling customer id renders blank
	CustomerName  string `gorm:"-" json:"customer_name,omitempty"`
	CustomerPhone string `gorm:"-" json:"customer_phone,omitempty"`
}

// TransactionItem freezes a cart line's pricing facts at sale time so later
// product edits don't rewrite history.
type TransactionItem struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	TransactionID string    `gorm:"index" json:"transaction_id"`
	Seq           int       `json:"-"` // cart order at checkout
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	Quantity      int       `json:"quantity"`
	Discount      *Discount `gorm:"type:jsonb" json:"discount,omitempty"`
}

// TransactionRequest is the checkout payload produced by cart.Settle and
// submitted as a single POST.
type TransactionRequest struct {
	CustomerID    string                   `json:"customer_id,omitempty"`
	Items         []TransactionRequestItem `json:"items"`
	Total         int64                    `json:"total"`
	TotalDiscount int64                    `json:"total_discount"`
	AmountPaid    int64                    `json:"amount_paid"`
	Change        int64                    `json:"change"`
	PaymentMethod PaymentMethod            `json:"payment_method"`
	CreatedAt     time.Time                `json:"created_at"`
}

type TransactionRequestItem struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
	Discount  *Discount `json:"discount,omitempty"`
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var ErrInvalidDiscount = errors.New("invalid discount")

// Discount is the (type, value) pair attached to a product, or frozen onto a
// transaction item at sale time. Amount is in percent for "percentage" and in
// rupiah for "fixed".
type Discount struct {
	Type   DiscountType `json:"type"`
	Amount int64        `json:"value"`
}

// Custom type to handle Discount as JSON in DB
func (d Discount) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *Discount) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported type for discount column")
	}
}

// Validate rejects descriptors outside their documented domain. This runs at
// product create/update time; the pricing engine itself only clamps.
func (d *Discount) Validate() error {
	if d == nil {
		return nil
	}
	switch d.Type {
	case DiscountPercentage:
		if d.Amount < 0 || d.Amount > 100 {
			return fmt.Errorf("%w: percentage must be between 0 and 100", ErrInvalidDiscount)
		}
	case DiscountFixed:
		if d.Amount < 0 {
			return fmt.Errorf("%w: fixed value must not be negative", ErrInvalidDiscount)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, d.Type)
	}
	return nil
}

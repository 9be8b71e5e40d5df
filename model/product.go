package model

import "time"

type Product struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	OwnerID    string    `gorm:"index" json:"owner_id"`
	Name       string    `json:"name"`
	Price      int64     `json:"price"`
	Stock      int       `json:"stock"` // may go negative, see store.CommitTransaction
	CategoryID string    `json:"category_id,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	Discount   *Discount `gorm:"type:jsonb" json:"discount,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Category struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"index" json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

// StoreSetting holds per-store branding and receipt options. One row per
// owner; Theme and Receipt are free-form blobs consumed by the client.
type StoreSetting struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	OwnerID   string         `gorm:"uniqueIndex" json:"owner_id"`
	StoreName string         `json:"store_name"`
	Address   string         `json:"address,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	LogoURL   string         `json:"logo_url,omitempty"`
	Footer    string         `json:"footer,omitempty"`
	Theme     datatypes.JSON `json:"theme,omitempty"`
	Receipt   datatypes.JSON `json:"receipt,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

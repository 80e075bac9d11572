package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item sold through the POS.
// Stock is clamped at zero: a sale can never drive it negative.
type Product struct {
	ProductID string          `json:"productID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // Unit price, non-negative
	Stock     int             `json:"stock"` // Units on hand, never below zero
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

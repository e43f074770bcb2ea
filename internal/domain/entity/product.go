package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item shown on the storefront and managed from the
// admin dashboard.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	PriceWithVAT decimal.Decimal `json:"price_with_vat"`
	Category     string          `json:"category"` // Category name, not id. See Category.
	Photo        string          `json:"photo"`
	KeyFeatures  string          `json:"key_features"`
	Available    bool            `json:"available"`
	CreatedAt    time.Time       `json:"created_at"`
}

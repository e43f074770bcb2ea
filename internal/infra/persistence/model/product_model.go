package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Category stores the category
// name, not an id; the source schema has no foreign key here.
type ProductModel struct {
	ID           string          `gorm:"type:varchar(64);primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceWithVAT decimal.Decimal `gorm:"column:price_with_vat;type:numeric(12,2);not null"`
	Category     string          `gorm:"type:varchar(255);not null"`
	Photo        string          `gorm:"type:text"`
	KeyFeatures  string          `gorm:"type:text"`
	Available    bool            `gorm:"default:true"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table. The user, profile and
// network columns are free-form labels, not references.
type TransactionModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	User      string `gorm:"column:username;type:varchar(255);not null"`
	Coins     int
	Status    string          `gorm:"type:varchar(64)"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Type      string          `gorm:"column:transaction_type;type:varchar(64)"`
	Profile   string          `gorm:"type:varchar(255)"`
	Network   string          `gorm:"type:varchar(64)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a payment or payout tracked from the admin dashboard.
// User, Profile and Network are free-form labels, not foreign keys.
type Transaction struct {
	ID        string          `json:"id"`
	User      string          `json:"user"`
	Coins     int             `json:"coins"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Profile   string          `json:"profile"`
	Network   string          `json:"network"`
	CreatedAt time.Time       `json:"created_at"`
}

package usecase

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// TransactionInput carries the writable fields of a transaction record.
type TransactionInput struct {
	User    string
	Coins   int
	Status  string
	Amount  decimal.Decimal
	Type    string
	Profile string
	Network string
}

// TransactionUsecase defines business operations over the payment ledger
// shown on the admin dashboard. Every operation, reads included, sits behind
// authentication.
type TransactionUsecase interface {
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*entity.Transaction, error)
	CreateTransaction(ctx context.Context, input TransactionInput) (*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

package repository

import (
	"context"
	"errors"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// ErrTransactionNotFound is returned when a transaction lookup yields no row.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines persistence operations for transactions.
// List returns transactions ordered newest first.
type TransactionRepository interface {
	List(ctx context.Context) ([]*entity.Transaction, error)
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id string) error
}

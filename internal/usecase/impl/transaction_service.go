package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/Ulrich-Yao/website/internal/delivery/context"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	logger *slog.Logger,
) usecase.TransactionUsecase {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *transactionService) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

func (srv *transactionService) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	transaction, err := srv.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "transaction not found")
		}

		return nil, errors.Wrap(err, "failed to get transaction")
	}

	return transaction, nil
}

func (srv *transactionService) CreateTransaction(ctx context.Context, input usecase.TransactionInput) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		ID:      uuid.NewString(),
		User:    input.User,
		Coins:   input.Coins,
		Status:  input.Status,
		Amount:  input.Amount,
		Type:    input.Type,
		Profile: input.Profile,
		Network: input.Network,
	}

	if err := srv.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	srv.log(ctx).Info("Transaction created",
		slog.String("id", transaction.ID),
		slog.String("user", transaction.User),
		slog.String("status", transaction.Status))

	return transaction, nil
}

func (srv *transactionService) UpdateTransaction(ctx context.Context, id string, input usecase.TransactionInput) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		ID:      id,
		User:    input.User,
		Coins:   input.Coins,
		Status:  input.Status,
		Amount:  input.Amount,
		Type:    input.Type,
		Profile: input.Profile,
		Network: input.Network,
	}

	if err := srv.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "transaction not found")
		}

		return nil, errors.Wrap(err, "failed to update transaction")
	}

	return srv.GetTransaction(ctx, id)
}

func (srv *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := srv.transactionRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete transaction")
	}

	srv.log(ctx).Info("Transaction deleted", slog.String("id", id))

	return nil
}

package postgres

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements repository.TransactionRepository using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// List returns all transactions ordered newest first.
func (repo *transactionRepository) List(ctx context.Context) ([]*entity.Transaction, error) {
	var models []*model.TransactionModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for _, m := range models {
		transactions = append(transactions, toTransactionDomain(m))
	}

	return transactions, nil
}

// FindByID retrieves a single transaction by its id.
func (repo *transactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionM model.TransactionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&transactionM), nil
}

// Create persists a new transaction.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required transaction information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.CreatedAt = transactionM.CreatedAt

	return nil
}

// Update overwrites an existing transaction row.
func (repo *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transactionM.ID).
		Updates(map[string]any{
			"username":         transactionM.User,
			"coins":            transactionM.Coins,
			"status":           transactionM.Status,
			"amount":           transactionM.Amount,
			"transaction_type": transactionM.Type,
			"profile":          transactionM.Profile,
			"network":          transactionM.Network,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction by id. Missing rows are not an error.
func (repo *transactionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransactionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete transaction")
	}

	return nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		User:      data.User,
		Coins:     data.Coins,
		Status:    data.Status,
		Amount:    data.Amount,
		Type:      data.Type,
		Profile:   data.Profile,
		Network:   data.Network,
		CreatedAt: data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:        data.ID,
		User:      data.User,
		Coins:     data.Coins,
		Status:    data.Status,
		Amount:    data.Amount,
		Type:      data.Type,
		Profile:   data.Profile,
		Network:   data.Network,
		CreatedAt: data.CreatedAt,
	}
}

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	"github.com/Ulrich-Yao/website/internal/domain/repository"
	"github.com/Ulrich-Yao/website/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_POSTGRES_DSN and resets
// the tables the suite touches. Skipped when the variable is unset so plain
// unit runs stay hermetic.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.CategoryModel{}, &model.ProductModel{}))
	require.NoError(t, db.Exec("DELETE FROM products").Error)
	require.NoError(t, db.Exec("DELETE FROM categories").Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestCategoryRepository_ListOrdersByName(t *testing.T) {
	repo := NewCategoryRepository(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Consoles", "Accessories", "Merch"} {
		require.NoError(t, repo.Create(ctx, &entity.Category{
			ID:   uuid.NewString(),
			Name: name,
		}))
	}

	categories, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 3)
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	assert.Equal(t, []string{"Accessories", "Consoles", "Merch"}, names)
}

func TestProductRepository_CreateFindRoundTrip(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	product := &entity.Product{
		ID:           uuid.NewString(),
		Name:         "Arcade stick",
		Description:  "Eight buttons, square gate",
		Price:        decimal.RequireFromString("199.99"),
		PriceWithVAT: decimal.RequireFromString("243.99"),
		Category:     "Accessories",
		Photo:        "/uploads/stick.png",
		KeyFeatures:  "turbo;remappable",
		Available:    true,
	}
	require.NoError(t, repo.Create(ctx, product))
	assert.WithinDuration(t, time.Now(), product.CreatedAt, time.Minute)

	found, err := repo.FindByID(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, product.Name, found.Name)
	assert.Equal(t, product.Description, found.Description)
	assert.True(t, found.Price.Equal(product.Price), "price %s", found.Price)
	assert.True(t, found.PriceWithVAT.Equal(product.PriceWithVAT), "priceWithVAT %s", found.PriceWithVAT)
	assert.Equal(t, product.Category, found.Category)
	assert.Equal(t, product.Photo, found.Photo)
	assert.Equal(t, product.KeyFeatures, found.KeyFeatures)
	assert.Equal(t, product.Available, found.Available)
	assert.WithinDuration(t, product.CreatedAt, found.CreatedAt, time.Second)
}

func TestCategoryRepository_FindByID_MissingMapsToSentinel(t *testing.T) {
	repo := NewCategoryRepository(openTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewCategoryRepository(openTestDB(t))
	ctx := context.Background()

	// Deleting an id that never existed is not an error.
	require.NoError(t, repo.Delete(ctx, uuid.NewString()))

	category := &entity.Category{ID: uuid.NewString(), Name: "Consoles"}
	require.NoError(t, repo.Create(ctx, category))
	require.NoError(t, repo.Delete(ctx, category.ID))

	_, err := repo.FindByID(ctx, category.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	// And again, after the row is gone.
	assert.NoError(t, repo.Delete(ctx, category.ID))
}

func TestCategoryRepository_UpdateMissingRowMapsToSentinel(t *testing.T) {
	repo := NewCategoryRepository(openTestDB(t))

	err := repo.Update(context.Background(), &entity.Category{
		ID:   uuid.NewString(),
		Name: "Ghost",
	})

	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestProductRepository_UpdateWritesFalseAvailability(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	product := &entity.Product{
		ID:           uuid.NewString(),
		Name:         "Arcade stick",
		Price:        decimal.RequireFromString("199.99"),
		PriceWithVAT: decimal.RequireFromString("243.99"),
		Category:     "Accessories",
		Available:    true,
	}
	require.NoError(t, repo.Create(ctx, product))

	product.Available = false
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, found.Available)
}

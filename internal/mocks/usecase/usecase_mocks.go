// Package usecase provides testify mocks for the application usecase
// interfaces, used by the handler tests.
package usecase

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	appusecase "github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a new mock bound to the test lifecycle.
func NewMockAuthUsecase(t constructorTestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input appusecase.LoginInput) (*appusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*appusecase.LoginOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCatalogUsecase mocks usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

// NewMockCatalogUsecase creates a new mock bound to the test lifecycle.
func NewMockCatalogUsecase(t constructorTestingT) *MockCatalogUsecase {
	m := &MockCatalogUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) CreateCategory(ctx context.Context, input appusecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) UpdateCategory(ctx context.Context, id string, input appusecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) CreateProduct(ctx context.Context, input appusecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) UpdateProduct(ctx context.Context, id string, input appusecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

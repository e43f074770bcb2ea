// Package repository provides testify mocks for the domain repository
// interfaces. Each constructor wires the mock to the test and asserts
// expectations on cleanup.
package repository

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new mock bound to the test lifecycle.
func NewMockUserRepository(t constructorTestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a new mock bound to the test lifecycle.
func NewMockCategoryRepository(t constructorTestingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a new mock bound to the test lifecycle.
func NewMockProductRepository(t constructorTestingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockNewsRepository mocks repository.NewsRepository.
type MockNewsRepository struct {
	mock.Mock
}

// NewMockNewsRepository creates a new mock bound to the test lifecycle.
func NewMockNewsRepository(t constructorTestingT) *MockNewsRepository {
	m := &MockNewsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNewsRepository) List(ctx context.Context) ([]*entity.News, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.News), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id string) (*entity.News, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.News), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNewsRepository) Create(ctx context.Context, news *entity.News) error {
	return m.Called(ctx, news).Error(0)
}

func (m *MockNewsRepository) Update(ctx context.Context, news *entity.News) error {
	return m.Called(ctx, news).Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockLandingRepository mocks repository.LandingRepository.
type MockLandingRepository struct {
	mock.Mock
}

// NewMockLandingRepository creates a new mock bound to the test lifecycle.
func NewMockLandingRepository(t constructorTestingT) *MockLandingRepository {
	m := &MockLandingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLandingRepository) List(ctx context.Context) ([]*entity.Landing, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Landing), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLandingRepository) FindByID(ctx context.Context, id string) (*entity.Landing, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Landing), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLandingRepository) Create(ctx context.Context, landing *entity.Landing) error {
	return m.Called(ctx, landing).Error(0)
}

func (m *MockLandingRepository) Update(ctx context.Context, landing *entity.Landing) error {
	return m.Called(ctx, landing).Error(0)
}

func (m *MockLandingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository creates a new mock bound to the test lifecycle.
func NewMockProfileRepository(t constructorTestingT) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Profile), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Profile), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockQuestionRepository mocks repository.QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

// NewMockQuestionRepository creates a new mock bound to the test lifecycle.
func NewMockQuestionRepository(t constructorTestingT) *MockQuestionRepository {
	m := &MockQuestionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]*entity.Question, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Question), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id string) (*entity.Question, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Question), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	return m.Called(ctx, question).Error(0)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *entity.Question) error {
	return m.Called(ctx, question).Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTransactionRepository mocks repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a new mock bound to the test lifecycle.
func NewMockTransactionRepository(t constructorTestingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*entity.Transaction, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Transaction), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Transaction), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"io"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainservice "github.com/Ulrich-Yao/website/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock bound to the test lifecycle.
func NewMockTokenService(t constructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*domainservice.Claims, error) {
	args := m.Called(token)
	if v := args.Get(0); v != nil {
		return v.(*domainservice.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock bound to the test lifecycle.
func NewMockPasswordHasher(t constructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockFileStorage mocks service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

// NewMockFileStorage creates a new mock bound to the test lifecycle.
func NewMockFileStorage(t constructorTestingT) *MockFileStorage {
	m := &MockFileStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFileStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, content)

	return args.String(0), args.Error(1)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials submitted by the admin dashboard.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the signed token and the account it identifies after a
// successful credential check.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	// Login verifies the credentials and issues a signed session token.
	// Unknown usernames and wrong passwords both surface as
	// domainerrors.ErrInvalidCredentials, indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}

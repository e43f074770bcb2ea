// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/Ulrich-Yao/website/internal/domain/entity"
)

// Claims defines the custom claims embedded in a session token.
// The user id travels in the registered Subject field.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. The interface is
// transport-agnostic: callers decide whether the token rides in a cookie or
// a header.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given user.
	Issue(user *entity.User) (string, error)

	// Verify checks a token's signature and expiry and returns its claims.
	Verify(token string) (*Claims, error)
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	"github.com/Ulrich-Yao/website/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.TokenSecret == "" {
		return nil, errors.New("token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.TokenSecret),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed token carrying the user's id and username,
// expiring ttl (24h by default) after issuance.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns its claims.
// Malformed, tampered and expired tokens all come back as a plain error;
// callers must not surface the distinction to clients.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.TokenSecret = "test_secret_key_very_long_for_testing"
	cfg.Auth.TokenTTL = ttl

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testConfig(24 * time.Hour))
	require.NoError(t, err)

	user := &entity.User{ID: "admin-1", Username: "admin"}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)

	// Expiry is 24h out from issuance.
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative TTL produces an already-expired token.
	svc, err := NewJWTService(testConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(&entity.User{ID: "admin-1", Username: "admin"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(testConfig(24 * time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(&entity.User{ID: "admin-1", Username: "admin"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(24 * time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(24 * time.Hour))
	require.NoError(t, err)

	otherCfg := testConfig(24 * time.Hour)
	otherCfg.Auth.TokenSecret = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: "admin-1", Username: "admin"})
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

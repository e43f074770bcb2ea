package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ulrich-Yao/website/config"
	deliverycontext "github.com/Ulrich-Yao/website/internal/delivery/context"
	"github.com/Ulrich-Yao/website/internal/domain/service"
	mockService "github.com/Ulrich-Yao/website/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.CookieName = "auth-token"

	return cfg
}

func adminClaims() *service.Claims {
	return &service.Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "admin-1",
		},
	}
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "passed")
	})

	return rec, c, handler(c)
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, _, err := runMiddleware(t, mw.Authenticate, "/api/categories", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "garbage").Return(nil, jwt.ErrTokenMalformed)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, _, err := runMiddleware(t, mw.Authenticate, "/api/categories",
		&http.Cookie{Name: "auth-token", Value: "garbage"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidCookieSetsUser(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "good-token").Return(adminClaims(), nil)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, c, err := runMiddleware(t, mw.Authenticate, "/api/categories",
		&http.Cookie{Name: "auth-token", Value: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-1", deliverycontext.GetUserID(c))
	assert.Equal(t, "admin", deliverycontext.GetUsername(c))
}

func TestGuardPages_RedirectsToLogin(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, _, err := runMiddleware(t, mw.GuardPages, "/admin/products", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPagePath, rec.Header().Get(echo.HeaderLocation))
}

func TestGuardPages_LoginPageIsExempt(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, _, err := runMiddleware(t, mw.GuardPages, "/admin/login", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "passed", rec.Body.String())
}

func TestGuardPages_ValidSessionPasses(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "good-token").Return(adminClaims(), nil)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, _, err := runMiddleware(t, mw.GuardPages, "/admin/products",
		&http.Cookie{Name: "auth-token", Value: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardPages_ExpiredSessionRedirects(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "stale").Return(nil, jwt.ErrTokenExpired)
	mw := NewAuthMiddleware(tokenSvc, authTestConfig())

	rec, _, err := runMiddleware(t, mw.GuardPages, "/admin/news",
		&http.Cookie{Name: "auth-token", Value: "stale"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPagePath, rec.Header().Get(echo.HeaderLocation))
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/delivery/api/validator"
	"github.com/Ulrich-Yao/website/internal/domain/entity"
	domainerrors "github.com/Ulrich-Yao/website/internal/domain/errors"
	mockUsecase "github.com/Ulrich-Yao/website/internal/mocks/usecase"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authHandlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.CookieName = "auth-token"
	cfg.Auth.TokenTTL = 24 * time.Hour

	return cfg
}

func newAuthHandlerFixture(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *echo.Echo) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := &AuthHandler{
		authUC: authUC,
		cfg:    authHandlerTestConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, authUC, e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	h, authUC, e := newAuthHandlerFixture(t)

	user := &entity.User{ID: "admin-1", Username: "admin", PasswordHash: "hidden"}
	authUC.On("Login", mock.Anything, usecase.LoginInput{Username: "admin", Password: "admin123"}).
		Return(&usecase.LoginOutput{Token: "signed.jwt.token", User: user}, nil)

	c, rec := postJSON(e, "/api/auth/login", `{"username":"admin","password":"admin123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, "auth-token")
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "hidden")
	assert.Contains(t, rec.Body.String(), `"signed.jwt.token"`)
	assert.Contains(t, rec.Body.String(), `"admin-1"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC, e := newAuthHandlerFixture(t)

	authUC.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := postJSON(e, "/api/auth/login", `{"username":"admin","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, "auth-token"))
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _, e := newAuthHandlerFixture(t)

	c, rec := postJSON(e, "/api/auth/login", `{"username":"admin"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout_ExpiresCookie(t *testing.T) {
	h, _, e := newAuthHandlerFixture(t)

	c, rec := postJSON(e, "/api/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, "auth-token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

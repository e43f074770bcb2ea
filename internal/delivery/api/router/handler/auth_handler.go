// Package handler contains the echo HTTP handlers for the API surface.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// LoginRequest represents the credentials posted by the login form.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and plants the session cookie. The token also
// travels in the body for non-browser clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Username and password are required")
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.sessionCookie(out.Token, int(h.cfg.Auth.TokenTTL.Seconds())))

	return response.Success(c, http.StatusOK, map[string]any{
		"token": out.Token,
		"user":  out.User.Summary(),
	})
}

// Logout discards the session by expiring the cookie. The token itself is
// stateless, so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

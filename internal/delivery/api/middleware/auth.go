package middleware

import (
	"net/http"
	"strings"

	"github.com/Ulrich-Yao/website/config"
	deliverycontext "github.com/Ulrich-Yao/website/internal/delivery/context"
	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// LoginPagePath is the dashboard login page. Unauthenticated visitors to any
// other dashboard page are redirected here; the page itself stays reachable
// so there is no redirect loop.
const LoginPagePath = "/admin/login"

// AuthMiddleware guards API mutations and dashboard pages with the session
// cookie issued at login.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// claims reads and verifies the session cookie. Missing cookie, bad
// signature and expired token all come back as a plain error.
func (m *AuthMiddleware) claims(c echo.Context) (*service.Claims, error) {
	cookie, err := c.Cookie(m.cfg.Auth.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, echo.ErrUnauthorized
	}

	return m.tokenSvc.Verify(cookie.Value)
}

// Authenticate validates the session cookie on API routes. Failures get a
// 401 JSON response; the cookie contents never influence the error message.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claims(c)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
		}

		deliverycontext.SetUser(c, claims.Subject, claims.Username)

		return next(c)
	}
}

// GuardPages protects the static dashboard pages. Browsers land here, so an
// invalid session means a redirect to the login page rather than JSON.
func (m *AuthMiddleware) GuardPages(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if isLoginPage(path) {
			return next(c)
		}

		claims, err := m.claims(c)
		if err != nil {
			return c.Redirect(http.StatusFound, LoginPagePath)
		}

		deliverycontext.SetUser(c, claims.Subject, claims.Username)

		return next(c)
	}
}

// isLoginPage matches the login page and its asset paths under it.
func isLoginPage(path string) bool {
	trimmed := strings.TrimSuffix(path, "/")

	return trimmed == LoginPagePath || strings.HasPrefix(path, LoginPagePath+"/")
}

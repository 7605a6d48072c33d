package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pmorales/portfolio/internal/api/sessioncookie"
	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/core/ports"
)

const (
	userKey  = "current_user"
	tokenKey = "session_token"
)

// LoadSession resolves the session cookie and attaches the authenticated
// user to the request context. Every failure path — no cookie, malformed
// value, bad MAC, unknown or expired token, session store unreachable —
// degrades silently to an anonymous request; the gate never surfaces an
// error to the caller.
func LoadSession(auth ports.AuthService, secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessioncookie.Name)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			token, ok := sessioncookie.Decode(cookie.Value, secret)
			if !ok {
				return next(c)
			}

			user, err := auth.UserFromSession(c.Request().Context(), token)
			if err != nil {
				return next(c)
			}

			c.Set(userKey, user)
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

// RequireAuth gates a route on an authenticated session. Anonymous
// requests are redirected to the login page with no side effect.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user LoadSession attached, or nil for an
// anonymous request.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userKey).(*domain.User)
	return user
}

// SessionToken returns the raw session token for the current request, or
// "" for an anonymous request.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}

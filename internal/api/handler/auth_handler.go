package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pmorales/portfolio/internal/api/metrics"
	"github.com/pmorales/portfolio/internal/api/middleware"
	"github.com/pmorales/portfolio/internal/api/sessioncookie"
	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/core/ports"
)

// AuthHandler owns the register/login/logout surface.
type AuthHandler struct {
	auth          ports.AuthService
	secret        []byte
	sessionTTL    time.Duration
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, secret []byte, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		secret:        secret,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", pageData{
		Title: "Register",
		User:  middleware.CurrentUser(c),
	})
}

// Register creates the account and logs the new user straight in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.renderRegister(c, http.StatusBadRequest, "invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderRegister(c, http.StatusUnprocessableEntity, err.Error(), form)
	}

	_, token, err := h.auth.Register(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return h.renderRegister(c, http.StatusConflict, "that username is already taken", form)
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	c.SetCookie(sessioncookie.New(token, h.secret, h.sessionTTL, h.secureCookies))
	return c.Redirect(http.StatusSeeOther, "/comments")
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageData{
		Title: "Log in",
		User:  middleware.CurrentUser(c),
	})
}

// Login verifies credentials and establishes a session. Unknown username
// and wrong password render the same error page with the same status.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, "invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderLogin(c, http.StatusUnprocessableEntity, err.Error(), form)
	}

	_, token, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Render(http.StatusUnauthorized, "login-error.html", pageData{
				Title: "Login failed",
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(sessioncookie.New(token, h.secret, h.sessionTTL, h.secureCookies))
	return c.Redirect(http.StatusSeeOther, "/comments")
}

// Logout destroys the server-side session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), middleware.SessionToken(c)); err != nil {
		return err
	}
	metrics.SessionsDestroyedTotal.Inc()
	c.SetCookie(sessioncookie.Expired(h.secureCookies))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, msg string, form registerForm) error {
	return c.Render(status, "register.html", pageData{
		Title: "Register",
		User:  middleware.CurrentUser(c),
		Error: msg,
		Form:  map[string]string{"username": form.Username},
	})
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, msg string, form loginForm) error {
	return c.Render(status, "login.html", pageData{
		Title: "Log in",
		User:  middleware.CurrentUser(c),
		Error: msg,
		Form:  map[string]string{"username": form.Username},
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pmorales/portfolio/internal/api/middleware"
)

// PageHandler renders the static informational pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{
		Title: "Home",
		User:  middleware.CurrentUser(c),
	})
}

func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", pageData{
		Title: "About",
		User:  middleware.CurrentUser(c),
	})
}

func (h *PageHandler) ThankYou(c echo.Context) error {
	return c.Render(http.StatusOK, "thank-you.html", pageData{
		Title: "Thank you",
		User:  middleware.CurrentUser(c),
	})
}

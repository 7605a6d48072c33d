package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pmorales/portfolio/internal/api/metrics"
	"github.com/pmorales/portfolio/internal/api/middleware"
	"github.com/pmorales/portfolio/internal/core/ports"
)

// ContactHandler renders the contact form and persists submissions.
type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Show(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", pageData{
		Title: "Contact",
		User:  middleware.CurrentUser(c),
	})
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var form contactForm
	if err := c.Bind(&form); err != nil {
		return h.renderWithError(c, http.StatusBadRequest, "invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderWithError(c, http.StatusUnprocessableEntity, err.Error(), form)
	}

	if err := h.contacts.Submit(c.Request().Context(), form.Name, form.Email, form.Message); err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/thank-you")
}

func (h *ContactHandler) renderWithError(c echo.Context, status int, msg string, form contactForm) error {
	return c.Render(status, "contact.html", pageData{
		Title: "Contact",
		User:  middleware.CurrentUser(c),
		Error: msg,
		Form: map[string]string{
			"name":    form.Name,
			"email":   form.Email,
			"message": form.Message,
		},
	})
}

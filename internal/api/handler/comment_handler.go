package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pmorales/portfolio/internal/api/metrics"
	"github.com/pmorales/portfolio/internal/api/middleware"
	"github.com/pmorales/portfolio/internal/core/domain"
	"github.com/pmorales/portfolio/internal/core/ports"
)

// CommentHandler renders the board and accepts new comments. Reads are
// public; the router places the write route behind RequireAuth.
type CommentHandler struct {
	comments ports.CommentService
}

func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) List(c echo.Context) error {
	all, err := h.comments.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "comments.html", pageData{
		Title:    "Comments",
		User:     middleware.CurrentUser(c),
		Comments: all,
	})
}

func (h *CommentHandler) Create(c echo.Context) error {
	author := middleware.CurrentUser(c)
	if author == nil {
		// The gate redirects before we get here; kept as a guard for
		// direct handler invocation.
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	var form commentForm
	if err := c.Bind(&form); err != nil {
		return h.renderWithError(c, http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderWithError(c, http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.comments.Post(c.Request().Context(), author, form.Body); err != nil {
		if errors.Is(err, domain.ErrEmptyComment) {
			return h.renderWithError(c, http.StatusUnprocessableEntity, "comment cannot be empty")
		}
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/comments")
}

// renderWithError re-renders the board with the current comments and an
// inline error above the form.
func (h *CommentHandler) renderWithError(c echo.Context, status int, msg string) error {
	all, err := h.comments.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(status, "comments.html", pageData{
		Title:    "Comments",
		User:     middleware.CurrentUser(c),
		Error:    msg,
		Comments: all,
	})
}

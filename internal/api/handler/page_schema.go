package handler

import "github.com/pmorales/portfolio/internal/core/domain"

// pageData is the view model every template receives. Form holds sticky
// values so a failed submission re-renders with the visitor's input intact
// (passwords excepted).
type pageData struct {
	Title    string
	User     *domain.User
	Error    string
	Form     map[string]string
	Comments []domain.Comment
}

// --- Form DTOs ---
// Field names mirror the browser form inputs and must not change: the
// templates and any cached pages post these exact names.

type registerForm struct {
	Username string `form:"username" validate:"required,min=3,max=64"`
	Password string `form:"password" validate:"required,min=8,max=128"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type contactForm struct {
	Name    string `form:"name"    validate:"required,max=255"`
	Email   string `form:"email"   validate:"required,email,max=255"`
	Message string `form:"message" validate:"required,max=4096"`
}

type commentForm struct {
	Body string `form:"comment_text" validate:"required,max=4096"`
}

package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubContactService struct {
	submitFn func(ctx context.Context, name, email, message string) error
}

func (s *stubContactService) Submit(ctx context.Context, name, email, message string) error {
	return s.submitFn(ctx, name, email, message)
}

func TestContactHandler_Submit_Success(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubContactService{
		submitFn: func(_ context.Context, name, email, message string) error {
			if name != "Ada" || email != "ada@example.com" || message != "hello" {
				t.Fatalf("unexpected args: %s %s %s", name, email, message)
			}
			return nil
		},
	}
	h := NewContactHandler(stub)

	c, rec := postForm(e, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"hello"},
	})

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/thank-you" {
		t.Fatalf("expected redirect to /thank-you, got %q", loc)
	}
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubContactService{
		submitFn: func(context.Context, string, string, string) error {
			t.Fatalf("service must not be called for invalid input")
			return nil
		},
	}
	h := NewContactHandler(stub)

	c, rec := postForm(e, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"not-an-email"},
		"message": {"hello"},
	})

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "valid email") {
		t.Fatalf("expected inline email error, got: %s", body)
	}
	// Sticky fields keep the visitor's input.
	if !strings.Contains(body, `value="Ada"`) || !strings.Contains(body, ">hello</textarea>") {
		t.Fatalf("expected sticky form values, got: %s", body)
	}
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	e := newTestEcho(t)
	stub := &stubContactService{
		submitFn: func(context.Context, string, string, string) error {
			t.Fatalf("service must not be called for invalid input")
			return nil
		},
	}
	h := NewContactHandler(stub)

	c, rec := postForm(e, "/contact", url.Values{})

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pmorales/portfolio/internal/core/domain"
)

func TestContactRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	repo := NewContactRepository(db)

	now := time.Now().UTC()
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+contact_messages\s*\(id,\s*name,\s*email,\s*message,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*$`).
		WithArgs("m-1", "Ada", "ada@example.com", "hello", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg := &domain.ContactMessage{ID: "m-1", Name: "Ada", Email: "ada@example.com", Message: "hello", CreatedAt: now}
	if err := repo.Create(context.Background(), msg); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContactRepository_Create_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()
	repo := NewContactRepository(db)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+contact_messages`).
		WillReturnError(errors.New("db down"))

	msg := &domain.ContactMessage{ID: "m-2", Name: "Bob", Email: "bob@example.com", Message: "hi", CreatedAt: time.Now()}
	if err := repo.Create(context.Background(), msg); err == nil {
		t.Fatalf("expected error")
	}
}

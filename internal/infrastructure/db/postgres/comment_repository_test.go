package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pmorales/portfolio/internal/core/domain"
)

func newCommentRepoWithMock(t *testing.T) (*CommentRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewCommentRepository(db), mock, db
}

func TestCommentRepository_Create(t *testing.T) {
	repo, mock, db := newCommentRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+comments\s*\(id,\s*author_id,\s*body,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`).
		WithArgs("c-1", "u-1", "first!", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	comment := &domain.Comment{ID: "c-1", AuthorID: "u-1", Body: "first!", CreatedAt: now}
	if _, err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCommentRepository_ListNewestFirst(t *testing.T) {
	repo, mock, db := newCommentRepoWithMock(t)
	defer db.Close()

	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "author_id", "username", "body", "created_at"}).
		AddRow("c-2", "u-1", "alice", "newer", newer).
		AddRow("c-1", "u-2", "bob", "older", older)
	mock.ExpectQuery(`(?s)^SELECT\s+c\.id,\s*c\.author_id,\s*u\.username,\s*c\.body,\s*c\.created_at\s+FROM\s+comments\s+c\s+JOIN\s+users\s+u\s+ON\s+u\.id\s*=\s*c\.author_id\s+ORDER\s+BY\s+c\.created_at\s+DESC\s*$`).
		WillReturnRows(rows)

	comments, err := repo.ListNewestFirst(context.Background())
	if err != nil {
		t.Fatalf("ListNewestFirst error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Body != "newer" || comments[0].AuthorName != "alice" {
		t.Fatalf("unexpected first comment: %+v", comments[0])
	}
}

func TestCommentRepository_List_Empty(t *testing.T) {
	repo, mock, db := newCommentRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+c\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "username", "body", "created_at"}))

	comments, err := repo.ListNewestFirst(context.Background())
	if err != nil {
		t.Fatalf("ListNewestFirst error: %v", err)
	}
	if comments == nil || len(comments) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", comments)
	}
}

func TestCommentRepository_List_DBError(t *testing.T) {
	repo, mock, db := newCommentRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+c\.id`).
		WillReturnError(errors.New("connection reset"))

	if _, err := repo.ListNewestFirst(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

package comments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vkozyrev/floodwatch/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+comments\s+.*RETURNING\s+id,\s*created_at`).
		WithArgs("r-1", "u-1", "Maris", "still rising").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c-1", time.Now()))

	c := &models.Comment{ReportID: "r-1", UserID: "u-1", UserName: "Maris", Body: "still rising"}
	got, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "c-1" {
		t.Fatalf("unexpected comment: %+v", got)
	}
}

func TestListByReport_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "report_id", "user_id", "user_name", "body", "created_at"}).
		AddRow("c-1", "r-1", "u-1", "Maris", "first", now).
		AddRow("c-2", "r-1", "u-2", "Vita", "second", now.Add(time.Minute))

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+comments\s+WHERE\s+report_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at`).
		WithArgs("r-1").
		WillReturnRows(rows)

	got, err := repo.ListByReport(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("ListByReport error: %v", err)
	}
	if len(got) != 2 || got[0].Body != "first" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}

func TestListByReport_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+comments`).
		WillReturnError(errors.New("db down"))

	if _, err := repo.ListByReport(context.Background(), "r-1"); err == nil {
		t.Fatal("expected error")
	}
}

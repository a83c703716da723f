package reports

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vkozyrev/floodwatch/internal/common"
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

var cols = []string{"id", "user_id", "user_name", "description", "water_level_cm", "latitude", "longitude", "photo_url", "status", "created_at"}

func reportRow(id, status string) []driverValue {
	return []driverValue{id, "u-1", "Maris", "water rising", 42.0, 56.9, 24.1, "", status, time.Now()}
}

type driverValue = driver.Value

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+reports\s+.*RETURNING\s+id,\s*created_at`).
		WithArgs("u-1", "Maris", "water rising", 42.0, 56.9, 24.1, "", "submitted").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r-1", time.Now()))

	report := &models.Report{
		UserID: "u-1", UserName: "Maris", Description: "water rising",
		WaterLevelCM: 42, Latitude: 56.9, Longitude: 24.1, Status: models.ReportSubmitted,
	}
	got, err := repo.Create(context.Background(), report)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "r-1" || got.CreatedAt.IsZero() {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestList_AllStatuses(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(cols).
		AddRow(reportRow("r-2", "verified")...).
		AddRow(reportRow("r-1", "submitted")...)

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+reports\s+ORDER\s+BY\s+created_at\s+DESC`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r-2" {
		t.Fatalf("unexpected reports: %+v", got)
	}
}

func TestList_ByStatusWithLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(cols).AddRow(reportRow("r-1", "verified")...)

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+reports\s+WHERE\s+status\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2`).
		WithArgs("verified", 10).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "verified", 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Status != models.ReportVerified {
		t.Fatalf("unexpected reports: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+reports\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(cols).AddRow(reportRow("r-1", "resolved")...)

	mock.ExpectQuery(`(?s)UPDATE\s+reports\s+SET\s+status\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+RETURNING`).
		WithArgs("r-1", "resolved").
		WillReturnRows(rows)

	got, err := repo.UpdateStatus(context.Background(), "r-1", models.ReportResolved)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if got.Status != models.ReportResolved {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+reports\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/dbx"
	"github.com/vkozyrev/floodwatch/internal/server/models"
)

const reportCols = "id, user_id, user_name, description, water_level_cm, latitude, longitude, photo_url, status, created_at"

// PostgresRepository implements report storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	query :=
		`INSERT INTO reports (user_id, user_name, description, water_level_cm, latitude, longitude, photo_url, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		report.UserID, report.UserName, report.Description, report.WaterLevelCM,
		report.Latitude, report.Longitude, report.PhotoURL, report.Status).
		Scan(&report.ID, &report.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return report, nil
}

func (r *PostgresRepository) List(ctx context.Context, status string, limit int) ([]*models.Report, error) {
	query := `SELECT ` + reportCols + ` FROM reports`
	args := []any{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Report, error) {
	query := `SELECT ` + reportCols + ` FROM reports WHERE id = $1`

	report := &models.Report{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID, &report.UserID, &report.UserName, &report.Description,
		&report.WaterLevelCM, &report.Latitude, &report.Longitude,
		&report.PhotoURL, &report.Status, &report.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return report, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Report, error) {
	query :=
		`UPDATE reports SET status = $2
		 WHERE id = $1
		 RETURNING ` + reportCols

	report := &models.Report{}
	err := r.db.QueryRowContext(ctx, query, id, status).Scan(
		&report.ID, &report.UserID, &report.UserName, &report.Description,
		&report.WaterLevelCM, &report.Latitude, &report.Longitude,
		&report.PhotoURL, &report.Status, &report.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return report, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reports WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanReport(rows *sql.Rows) (*models.Report, error) {
	report := &models.Report{}
	err := rows.Scan(
		&report.ID, &report.UserID, &report.UserName, &report.Description,
		&report.WaterLevelCM, &report.Latitude, &report.Longitude,
		&report.PhotoURL, &report.Status, &report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return report, nil
}

package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/dbx"
	"github.com/vkozyrev/floodwatch/internal/server/models"
)

// PostgresRepository implements profile storage over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	query :=
		`SELECT id, name, email, photo_url, role, city, county, created_at, updated_at FROM profiles
		 WHERE id = $1
		 `

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.PhotoURL, &p.Role, &p.City, &p.County,
		&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query :=
		`INSERT INTO profiles (id, name, email, photo_url, role, city, county, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   email = EXCLUDED.email,
		   photo_url = EXCLUDED.photo_url,
		   role = EXCLUDED.role,
		   city = EXCLUDED.city,
		   county = EXCLUDED.county,
		   updated_at = now()
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.ID, profile.Name, profile.Email, profile.PhotoURL,
		string(profile.Role), profile.City, profile.County).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

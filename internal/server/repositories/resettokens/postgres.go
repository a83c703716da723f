package resettokens

import (
	"context"
	"fmt"
	"time"

	"github.com/vkozyrev/floodwatch/internal/dbx"
)

// PostgresRepository stores password-reset tokens over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	// One live token per user: earlier tokens are revoked on issue.
	del := `
		DELETE FROM password_reset_tokens
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, del, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	ins := `
		INSERT INTO password_reset_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, ins, userID, token, time.Now().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

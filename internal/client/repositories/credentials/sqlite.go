package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vkozyrev/floodwatch/internal/cryptox"
	"github.com/vkozyrev/floodwatch/internal/dbx"
)

const (
	keyUser          = "user"
	keyLoginTime     = "login_time"
	keyProviderToken = "provider_token"
)

// SQLiteStore keeps each field as an AES-GCM sealed blob in the credentials
// table. The encryption key comes from the device key file; without it the
// store cannot be constructed, which callers treat as a fatal startup
// condition.
type SQLiteStore struct {
	db  *sql.DB
	key []byte
}

// NewSQLiteStore validates the encryption key eagerly so a missing or
// malformed device key fails construction rather than the first operation.
func NewSQLiteStore(db *sql.DB, key []byte) (*SQLiteStore, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("credential store: invalid key length %d", len(key))
	}
	return &SQLiteStore{db: db, key: key}, nil
}

// Cache writes the user blob and login timestamp in a single transaction.
func (s *SQLiteStore) Cache(ctx context.Context, userJSON []byte, loginTimeMillis int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyUser, userJSON); err != nil {
			return err
		}
		return s.set(ctx, tx, keyLoginTime, []byte(strconv.FormatInt(loginTimeMillis, 10)))
	})
}

// GetCached returns the cached user JSON or nil. Decryption failures are
// swallowed: a corrupt cache behaves like an empty one.
func (s *SQLiteStore) GetCached(ctx context.Context) ([]byte, error) {
	return s.get(ctx, keyUser)
}

// InitialLoginTime returns the cached login epoch millis, 0 when never set
// or unreadable.
func (s *SQLiteStore) InitialLoginTime(ctx context.Context) (int64, error) {
	b, err := s.get(ctx, keyLoginTime)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, nil
	}
	t, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, nil
	}
	return t, nil
}

func (s *SQLiteStore) SetProviderToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, keyProviderToken, []byte(token))
}

func (s *SQLiteStore) ProviderToken(ctx context.Context) (string, error) {
	b, err := s.get(ctx, keyProviderToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Clear removes all persisted fields.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	sealed, err := cryptox.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("failed to seal credentials[%s]: %w", key, err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, sealed)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}

	value, err := cryptox.Open(sealed, s.key)
	if err != nil {
		// Undecryptable entries behave like missing ones.
		return nil, nil
	}
	return value, nil
}

package credentials

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vkozyrev/floodwatch/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testKey() []byte { return common.GenerateRandByteArray(32) }

func newStore(t *testing.T, db *sql.DB) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(db, testKey())
	require.NoError(t, err)
	return s
}

func TestNewSQLiteStore_RejectsBadKey(t *testing.T) {
	db := setupDB(t)
	_, err := NewSQLiteStore(db, []byte("short"))
	require.Error(t, err)
	_, err = NewSQLiteStore(db, nil)
	require.Error(t, err)
}

func TestCache_RoundTrip(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	userJSON := []byte(`{"id":"u1","name":"Alice","role":"regular"}`)
	now := time.Now().UnixMilli()

	require.NoError(t, s.Cache(ctx, userJSON, now))

	got, err := s.GetCached(ctx)
	require.NoError(t, err)
	require.Equal(t, userJSON, got)

	tm, err := s.InitialLoginTime(ctx)
	require.NoError(t, err)
	require.Equal(t, now, tm)
}

func TestGetCached_EmptyStore(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	got, err := s.GetCached(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	tm, err := s.InitialLoginTime(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), tm)
}

func TestGetCached_UndecryptableBehavesLikeMissing(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	// Raw, unsealed garbage under the user key.
	_, err := db.Exec(`INSERT INTO credentials(key,value) VALUES('user', ?)`, []byte("garbage"))
	require.NoError(t, err)

	got, err := s.GetCached(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGetCached_WrongKeyBehavesLikeMissing(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	first := newStore(t, db)
	require.NoError(t, first.Cache(ctx, []byte(`{"id":"u1"}`), 1))

	// Same table, different device key.
	second := newStore(t, db)
	got, err := second.GetCached(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCache_Overwrites(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	require.NoError(t, s.Cache(ctx, []byte(`{"id":"u1"}`), 1))
	require.NoError(t, s.Cache(ctx, []byte(`{"id":"u2"}`), 2))

	got, err := s.GetCached(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"u2"}`), got)

	tm, err := s.InitialLoginTime(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), tm)
}

func TestProviderToken_RoundTripAndClear(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	tok, err := s.ProviderToken(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, s.SetProviderToken(ctx, "refresh-123"))
	tok, err = s.ProviderToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "refresh-123", tok)

	require.NoError(t, s.Cache(ctx, []byte(`{"id":"u1"}`), 42))
	require.NoError(t, s.Clear(ctx))

	got, err := s.GetCached(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	tm, err := s.InitialLoginTime(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), tm)

	tok, err = s.ProviderToken(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestValuesAreEncryptedAtRest(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	ctx := context.Background()

	userJSON := []byte(`{"id":"u1","email":"a@example.com"}`)
	require.NoError(t, s.Cache(ctx, userJSON, 1))

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM credentials WHERE key='user'`).Scan(&raw))
	require.NotContains(t, string(raw), "a@example.com")
}

func TestNoopStore(t *testing.T) {
	s := NewNoop()
	ctx := context.Background()

	require.NoError(t, s.Cache(ctx, []byte(`{"id":"u1"}`), 1))
	got, err := s.GetCached(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	tm, err := s.InitialLoginTime(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), tm)
}

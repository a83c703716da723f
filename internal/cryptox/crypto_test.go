package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveCacheKey([]byte("secret"), []byte("0123456789abcdef"))
	require.Len(t, key, 32)

	blob, err := Seal([]byte(`{"id":"u1","name":"Alice"}`), key)
	require.NoError(t, err)

	out, err := Open(blob, key)
	require.NoError(t, err)
	require.Equal(t, `{"id":"u1","name":"Alice"}`, string(out))
}

func TestOpen_WrongKey(t *testing.T) {
	key := DeriveCacheKey([]byte("secret"), []byte("0123456789abcdef"))
	other := DeriveCacheKey([]byte("other"), []byte("0123456789abcdef"))

	blob, err := Seal([]byte("payload"), key)
	require.NoError(t, err)

	_, err = Open(blob, other)
	require.ErrorIs(t, err, ErrMalformedBlob)
}

func TestOpen_TruncatedBlob(t *testing.T) {
	key := DeriveCacheKey([]byte("secret"), []byte("0123456789abcdef"))
	_, err := Open([]byte{1, 2, 3}, key)
	require.ErrorIs(t, err, ErrMalformedBlob)
}

func TestSealOpen_NonceIsRandom(t *testing.T) {
	key := DeriveCacheKey([]byte("secret"), []byte("0123456789abcdef"))
	a, err := Seal([]byte("payload"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("payload"), key)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestLoadOrCreateDeviceKey_Stable(t *testing.T) {
	dir := t.TempDir()
	k1, err := LoadOrCreateDeviceKey(dir)
	require.NoError(t, err)
	k2, err := LoadOrCreateDeviceKey(dir)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
	require.Len(t, k1, 32)
}

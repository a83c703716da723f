// Package credentials implements the on-device credential cache: an
// encrypted key-value store holding the last authenticated user record, the
// login timestamp, and the persisted provider refresh token used for session
// restoration.
package credentials

import "context"

// Store is the credential cache contract.
//
//   - Cache persists the serialized user and the login timestamp atomically.
//   - GetCached returns the cached user JSON, or nil when nothing usable is
//     stored. A blob that fails decryption counts as "nothing usable" — the
//     cache never surfaces corruption as an error to the session layer.
//   - InitialLoginTime returns epoch millis of the cached login, 0 if unset.
//   - SetProviderToken / ProviderToken persist the provider refresh token
//     between process runs (the managed-SDK session analog).
//   - Clear wipes every persisted field.
type Store interface {
	Cache(ctx context.Context, userJSON []byte, loginTimeMillis int64) error
	GetCached(ctx context.Context) ([]byte, error)
	InitialLoginTime(ctx context.Context) (int64, error)
	SetProviderToken(ctx context.Context, token string) error
	ProviderToken(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Noop is the remote-only backing strategy: nothing is ever cached, so every
// process start forces re-authentication against the backend.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Cache(ctx context.Context, userJSON []byte, loginTimeMillis int64) error {
	return nil
}
func (*Noop) GetCached(ctx context.Context) ([]byte, error)             { return nil, nil }
func (*Noop) InitialLoginTime(ctx context.Context) (int64, error)       { return 0, nil }
func (*Noop) SetProviderToken(ctx context.Context, token string) error  { return nil }
func (*Noop) ProviderToken(ctx context.Context) (string, error)         { return "", nil }
func (*Noop) Clear(ctx context.Context) error                           { return nil }

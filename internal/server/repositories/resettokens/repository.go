// Package resettokens declares the repository contract for password-reset
// tokens.
package resettokens

import (
	"context"
	"time"
)

type Repository interface {
	// Create stores a new reset token for userID with an expiry of
	// now+validity. Any previous token for the user is replaced.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
}

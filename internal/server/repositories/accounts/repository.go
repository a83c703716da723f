// Package accounts declares the repository contract for identity-provider
// account records.
package accounts

import (
	"context"

	"github.com/vkozyrev/floodwatch/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. A duplicate email returns
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByEmail returns the account for the email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID returns the account by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

// Package profiles declares the repository contract for document-store user
// profiles.
package profiles

import (
	"context"

	"github.com/vkozyrev/floodwatch/internal/server/models"
)

type Repository interface {
	// Get returns the profile by account id, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Profile, error)

	// Upsert creates or fully replaces the profile with the given id and
	// returns the stored row.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

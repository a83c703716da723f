// Package comments declares the repository contract for report discussion
// threads.
package comments

import (
	"context"

	"github.com/vkozyrev/floodwatch/internal/server/models"
)

type Repository interface {
	// Create inserts a comment and returns it with id and timestamp set.
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// ListByReport returns a report's comments oldest first.
	ListByReport(ctx context.Context, reportID string) ([]*models.Comment, error)
}

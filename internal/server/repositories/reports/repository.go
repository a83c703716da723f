// Package reports declares the repository contract for flood reports.
package reports

import (
	"context"

	"github.com/vkozyrev/floodwatch/internal/server/models"
)

type Repository interface {
	// Create inserts a new report and returns it with id and timestamps set.
	Create(ctx context.Context, report *models.Report) (*models.Report, error)

	// List returns reports newest first. An empty status means all statuses;
	// limit <= 0 means no limit.
	List(ctx context.Context, status string, limit int) ([]*models.Report, error)

	// Get returns a report by id, or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Report, error)

	// UpdateStatus sets the report status and returns the updated row, or
	// common.ErrorNotFound.
	UpdateStatus(ctx context.Context, id string, status string) (*models.Report, error)

	// Delete removes a report by id, or common.ErrorNotFound when absent.
	Delete(ctx context.Context, id string) error
}

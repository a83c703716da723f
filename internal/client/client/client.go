// Package client defines the remote surfaces the FloodWatch client consumes:
// the identity-provider operations and the document-store operations, both
// served by the backend over gRPC.
package client

import (
	"context"

	"github.com/vkozyrev/floodwatch/internal/client/models"
)

// Session is the opaque provider session handle: the account id plus the
// provider's profile defaults at issue time.
type Session struct {
	ID          string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Client is the identity-provider surface.
//
// Contract:
//   - CreateAccount: create the provider account and open a session.
//   - SignIn: authenticate with email/password and open a session.
//   - Resume: reopen a session from a persisted refresh token.
//   - SignOut: invalidate the current session (local + remote best effort).
//   - SendPasswordReset: request a reset email; no session change.
//   - CurrentSession: the in-memory session, nil when signed out.
//   - SessionToken: the refresh token to persist for offline restoration.
//   - Ping: backend liveness, used by the connectivity probe.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Close() error
	CreateAccount(ctx context.Context, email, password, displayName string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Resume(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error
	CurrentSession() *Session
	SessionToken() string
	Ping(ctx context.Context) error
}

// DocumentStore is the structured-record surface holding user profiles,
// reports, and discussion threads, plus the object-storage presign call.
type DocumentStore interface {
	GetUser(ctx context.Context, id string) (*models.UserRecord, error)
	SaveUser(ctx context.Context, user *models.UserRecord) (*models.UserRecord, error)

	CreateReport(ctx context.Context, report *models.Report) (*models.Report, error)
	ListReports(ctx context.Context, status models.ReportStatus, limit int) ([]*models.Report, error)
	GetReport(ctx context.Context, id string) (*models.Report, error)
	UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error)
	DeleteReport(ctx context.Context, id string) error

	AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	ListComments(ctx context.Context, reportID string) ([]*models.Comment, error)

	PresignedPutURL(ctx context.Context, contentType string) (key string, url string, err error)
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/logging"
	"github.com/vkozyrev/floodwatch/internal/roles"
	sc "github.com/vkozyrev/floodwatch/internal/server/config"
	"github.com/vkozyrev/floodwatch/internal/server/models"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/repomanager"
)

const presignExpires = 15 * time.Minute

// ReportService owns flood reports and their discussion threads, plus the
// presigned photo-upload flow against the S3-compatible backend.
//
// Authorization:
//   - any authenticated user creates reports and comments;
//   - triage (status changes) requires the volunteer role or above;
//   - deletion requires ownership or the admin role.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config, logger logging.Logger) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: m,
		config:      config,
		logger:      logger.With("module", "reports"),
	}
}

// Create validates and stores a report on behalf of callerID. The reporter's
// display name is resolved from their profile; status is always submitted.
func (s *ReportService) Create(ctx context.Context, callerID string, report *models.Report) (*models.Report, error) {
	report.Description = strings.TrimSpace(report.Description)
	if report.Description == "" {
		return nil, fmt.Errorf("%w: description", common.ErrorInvalidArgument)
	}
	if report.WaterLevelCM < 0 {
		return nil, fmt.Errorf("%w: water level", common.ErrorInvalidArgument)
	}
	if report.Latitude < -90 || report.Latitude > 90 || report.Longitude < -180 || report.Longitude > 180 {
		return nil, fmt.Errorf("%w: coordinates", common.ErrorInvalidArgument)
	}

	report.UserID = callerID
	report.UserName = s.displayName(ctx, callerID)
	report.Status = models.ReportSubmitted

	created, err := s.repomanager.Reports(s.db).Create(ctx, report)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "report created", "report", created.ID, "user", callerID)
	return created, nil
}

// List returns reports filtered by status; an empty status means all.
func (s *ReportService) List(ctx context.Context, status string, limit int) ([]*models.Report, error) {
	if status != "" && !models.ValidReportStatus(status) {
		return nil, fmt.Errorf("%w: status %q", common.ErrorInvalidArgument, status)
	}
	return s.repomanager.Reports(s.db).List(ctx, status, limit)
}

func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	return s.repomanager.Reports(s.db).Get(ctx, id)
}

// UpdateStatus moves a report through triage. Requires the volunteer role or
// above.
func (s *ReportService) UpdateStatus(ctx context.Context, callerID, id, status string) (*models.Report, error) {
	if !models.ValidReportStatus(status) {
		return nil, fmt.Errorf("%w: status %q", common.ErrorInvalidArgument, status)
	}

	callerRole, err := s.callerRole(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !roles.HasPermission(callerRole, roles.Volunteer) {
		return nil, common.ErrorUnauthorized
	}

	updated, err := s.repomanager.Reports(s.db).UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "report status changed", "report", id, "status", status, "by", callerID)
	return updated, nil
}

// Delete removes a report. The owner may delete their own; admins anything.
func (s *ReportService) Delete(ctx context.Context, callerID, id string) error {
	report, err := s.repomanager.Reports(s.db).Get(ctx, id)
	if err != nil {
		return err
	}

	if report.UserID != callerID {
		callerRole, err := s.callerRole(ctx, callerID)
		if err != nil {
			return err
		}
		if callerRole != roles.Admin {
			return common.ErrorUnauthorized
		}
	}

	return s.repomanager.Reports(s.db).Delete(ctx, id)
}

// AddComment posts a comment on an existing report as callerID.
func (s *ReportService) AddComment(ctx context.Context, callerID, reportID, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: comment body", common.ErrorInvalidArgument)
	}

	// The FK would catch this too; checking first gives a clean NotFound.
	if _, err := s.repomanager.Reports(s.db).Get(ctx, reportID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReportID: reportID,
		UserID:   callerID,
		UserName: s.displayName(ctx, callerID),
		Body:     body,
	}
	return s.repomanager.Comments(s.db).Create(ctx, comment)
}

func (s *ReportService) ListComments(ctx context.Context, reportID string) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).ListByReport(ctx, reportID)
}

// GetRandomStorageKey builds a date-partitioned object key for a new photo.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("photos/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ReportService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// presignPutObject is a seam for testing the presign call.
var presignPutObject = func(ctx context.Context, c *s3.PresignClient, input *s3.PutObjectInput) (string, error) {
	req, err := c.PresignPutObject(ctx, input, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// GetPresignedPutUrl returns a fresh object key and a presigned PUT URL the
// client can upload a photo to.
func (s *ReportService) GetPresignedPutUrl(ctx context.Context, contentType string) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	input := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	url, err := presignPutObject(ctx, presignClient, input)
	if err != nil {
		return "", "", err
	}

	return key, url, nil
}

func (s *ReportService) displayName(ctx context.Context, userID string) string {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, userID)
	if err != nil {
		return ""
	}
	return p.Name
}

func (s *ReportService) callerRole(ctx context.Context, callerID string) (roles.Role, error) {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return roles.Default, nil
		}
		return "", common.ErrorInternal
	}
	return p.Role, nil
}

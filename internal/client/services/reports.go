package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vkozyrev/floodwatch/internal/client/client"
	"github.com/vkozyrev/floodwatch/internal/client/geoutil"
	"github.com/vkozyrev/floodwatch/internal/client/models"
	"github.com/vkozyrev/floodwatch/internal/client/session"
	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/logging"
	"github.com/vkozyrev/floodwatch/internal/netx"
)

const (
	maxDescriptionLen = 2000
	maxCommentLen     = 1000
)

// ReportService handles flood-report submission, browsing, and discussion.
// All remote calls are gated on connectivity; there is no offline queue, an
// unreachable backend fails the call immediately.
type ReportService struct {
	store  client.DocumentStore
	state  *session.StateHolder
	probe  netx.Prober
	logger logging.Logger
}

func NewReportService(store client.DocumentStore, state *session.StateHolder, probe netx.Prober, logger logging.Logger) *ReportService {
	return &ReportService{
		store:  store,
		state:  state,
		probe:  probe,
		logger: logger.With("module", "reports"),
	}
}

// Submit validates and creates a report on behalf of the current user. When
// photo is non-nil it is uploaded first through a presigned PUT URL and the
// resulting object key is attached to the report.
func (s *ReportService) Submit(ctx context.Context, description string, waterLevelCM, lat, lng float64, photo []byte, photoContentType string) (*models.Report, error) {
	user := s.state.CurrentUser()
	if user == nil {
		return nil, client.ErrNoSession
	}

	description = strings.TrimSpace(description)
	if description == "" || len(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description", common.ErrorInvalidArgument)
	}
	if waterLevelCM < 0 {
		return nil, fmt.Errorf("%w: water level", common.ErrorInvalidArgument)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates", common.ErrorInvalidArgument)
	}

	return netx.Execute(ctx, s.probe, func(ctx context.Context) (*models.Report, error) {
		photoURL := ""
		if len(photo) > 0 {
			key, url, err := s.store.PresignedPutURL(ctx, photoContentType)
			if err != nil {
				return nil, fmt.Errorf("presign photo upload: %w", err)
			}
			if err := netx.UploadToPresignedURL(ctx, url, photo, photoContentType); err != nil {
				return nil, fmt.Errorf("upload photo: %w", err)
			}
			photoURL = key
		}

		report, err := s.store.CreateReport(ctx, &models.Report{
			UserID:       user.ID,
			UserName:     user.Name,
			Description:  description,
			WaterLevelCM: waterLevelCM,
			Latitude:     lat,
			Longitude:    lng,
			PhotoURL:     photoURL,
			Status:       models.StatusSubmitted,
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "report submitted", "report", report.ID)
		return report, nil
	})
}

// List returns reports, optionally filtered by status. A zero status means
// all statuses; limit <= 0 means the server default.
func (s *ReportService) List(ctx context.Context, status models.ReportStatus, limit int) ([]*models.Report, error) {
	if status != "" && !models.ValidReportStatus(status) {
		return nil, fmt.Errorf("%w: status %q", common.ErrorInvalidArgument, status)
	}
	return netx.Execute(ctx, s.probe, func(ctx context.Context) ([]*models.Report, error) {
		return s.store.ListReports(ctx, status, limit)
	})
}

// ListNearby returns reports within radiusKm of the given point. Filtering
// is client-side over the status-filtered listing.
func (s *ReportService) ListNearby(ctx context.Context, lat, lng, radiusKm float64, status models.ReportStatus) ([]*models.Report, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius", common.ErrorInvalidArgument)
	}

	reports, err := s.List(ctx, status, 0)
	if err != nil {
		return nil, err
	}

	nearby := reports[:0]
	for _, r := range reports {
		if geoWithin(r, lat, lng, radiusKm) {
			nearby = append(nearby, r)
		}
	}
	return nearby, nil
}

func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	return netx.Execute(ctx, s.probe, func(ctx context.Context) (*models.Report, error) {
		return s.store.GetReport(ctx, id)
	})
}

// SetStatus moves a report through triage. The backend enforces the role
// requirement; this only rejects unknown statuses early.
func (s *ReportService) SetStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	if !models.ValidReportStatus(status) {
		return nil, fmt.Errorf("%w: status %q", common.ErrorInvalidArgument, status)
	}
	return netx.Execute(ctx, s.probe, func(ctx context.Context) (*models.Report, error) {
		return s.store.UpdateReportStatus(ctx, id, status)
	})
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	return netx.ExecuteErr(ctx, s.probe, func(ctx context.Context) error {
		return s.store.DeleteReport(ctx, id)
	})
}

// Comment posts a message in a report's discussion thread as the current
// user.
func (s *ReportService) Comment(ctx context.Context, reportID, body string) (*models.Comment, error) {
	user := s.state.CurrentUser()
	if user == nil {
		return nil, client.ErrNoSession
	}

	body = strings.TrimSpace(body)
	if body == "" || len(body) > maxCommentLen {
		return nil, fmt.Errorf("%w: comment body", common.ErrorInvalidArgument)
	}

	return netx.Execute(ctx, s.probe, func(ctx context.Context) (*models.Comment, error) {
		return s.store.AddComment(ctx, &models.Comment{
			ReportID: reportID,
			UserID:   user.ID,
			UserName: user.Name,
			Body:     body,
		})
	})
}

func (s *ReportService) Comments(ctx context.Context, reportID string) ([]*models.Comment, error) {
	return netx.Execute(ctx, s.probe, func(ctx context.Context) ([]*models.Comment, error) {
		return s.store.ListComments(ctx, reportID)
	})
}

func geoWithin(r *models.Report, lat, lng, radiusKm float64) bool {
	return geoutil.WithinKm(r.Latitude, r.Longitude, lat, lng, radiusKm)
}

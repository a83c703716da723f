package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/roles"
	sc "github.com/vkozyrev/floodwatch/internal/server/config"
	"github.com/vkozyrev/floodwatch/internal/server/models"
)

func newTestReportService(t *testing.T, rm *fakeRepoManager) *ReportService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	cfg := &sc.Config{
		S3RootUser:     "admin",
		S3RootPassword: "secretpassword",
		S3Bucket:       "floodwatch",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
	}
	return NewReportService(db, rm, cfg, discardLogger())
}

func reportFixtureManager() *fakeRepoManager {
	return &fakeRepoManager{
		reports:  &fakeReportsRepo{},
		comments: &fakeCommentsRepo{},
		profiles: &fakeProfilesRepo{profiles: map[string]*models.Profile{
			"u-1":   {ID: "u-1", Name: "Alice", Role: roles.Regular},
			"vol":   {ID: "vol", Name: "Vera", Role: roles.Volunteer},
			"admin": {ID: "admin", Name: "Root", Role: roles.Admin},
		}},
	}
}

func TestReportCreate(t *testing.T) {
	rm := reportFixtureManager()
	s := newTestReportService(t, rm)

	created, err := s.Create(context.Background(), "u-1", &models.Report{
		Description:  "  River over the footbridge  ",
		WaterLevelCM: 42,
		Latitude:     56.95,
		Longitude:    24.1,
		Status:       models.ReportResolved, // client cannot pick a status
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" || created.Status != models.ReportSubmitted {
		t.Fatalf("unexpected report: %+v", created)
	}
	if created.Description != "River over the footbridge" {
		t.Fatalf("description not trimmed: %q", created.Description)
	}
	if created.UserName != "Alice" {
		t.Fatalf("reporter name not resolved: %q", created.UserName)
	}
}

func TestReportCreate_Validation(t *testing.T) {
	s := newTestReportService(t, reportFixtureManager())

	tests := []struct {
		name   string
		report *models.Report
	}{
		{"empty description", &models.Report{Description: "   ", Latitude: 1, Longitude: 1}},
		{"negative water level", &models.Report{Description: "x", WaterLevelCM: -1}},
		{"latitude out of range", &models.Report{Description: "x", Latitude: 91}},
		{"longitude out of range", &models.Report{Description: "x", Longitude: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), "u-1", tt.report)
			if !errors.Is(err, common.ErrorInvalidArgument) {
				t.Fatalf("want ErrorInvalidArgument, got %v", err)
			}
		})
	}
}

func TestReportList_RejectsUnknownStatus(t *testing.T) {
	s := newTestReportService(t, reportFixtureManager())

	if _, err := s.List(context.Background(), "bogus", 0); !errors.Is(err, common.ErrorInvalidArgument) {
		t.Fatalf("want ErrorInvalidArgument, got %v", err)
	}
	if _, err := s.List(context.Background(), "", 0); err != nil {
		t.Fatalf("List error: %v", err)
	}
}

func TestReportUpdateStatus_RoleGate(t *testing.T) {
	rm := reportFixtureManager()
	s := newTestReportService(t, rm)

	created, err := s.Create(context.Background(), "u-1", &models.Report{Description: "x"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := s.UpdateStatus(context.Background(), "u-1", created.ID, models.ReportVerified); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized for regular user, got %v", err)
	}

	updated, err := s.UpdateStatus(context.Background(), "vol", created.ID, models.ReportVerified)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != models.ReportVerified {
		t.Fatalf("status not applied: %+v", updated)
	}

	if _, err := s.UpdateStatus(context.Background(), "vol", created.ID, "bogus"); !errors.Is(err, common.ErrorInvalidArgument) {
		t.Fatalf("want ErrorInvalidArgument, got %v", err)
	}
}

func TestReportDelete_OwnerOrAdmin(t *testing.T) {
	rm := reportFixtureManager()
	s := newTestReportService(t, rm)

	mine, _ := s.Create(context.Background(), "u-1", &models.Report{Description: "mine"})
	theirs, _ := s.Create(context.Background(), "vol", &models.Report{Description: "theirs"})

	if err := s.Delete(context.Background(), "u-1", theirs.ID); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized for non-owner, got %v", err)
	}
	if err := s.Delete(context.Background(), "u-1", mine.ID); err != nil {
		t.Fatalf("owner delete error: %v", err)
	}
	if err := s.Delete(context.Background(), "admin", theirs.ID); err != nil {
		t.Fatalf("admin delete error: %v", err)
	}
	if err := s.Delete(context.Background(), "admin", "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestReportComments(t *testing.T) {
	rm := reportFixtureManager()
	s := newTestReportService(t, rm)

	report, _ := s.Create(context.Background(), "u-1", &models.Report{Description: "x"})

	comment, err := s.AddComment(context.Background(), "vol", report.ID, " road closed ")
	if err != nil {
		t.Fatalf("AddComment error: %v", err)
	}
	if comment.Body != "road closed" || comment.UserName != "Vera" {
		t.Fatalf("unexpected comment: %+v", comment)
	}

	if _, err := s.AddComment(context.Background(), "vol", "ghost", "x"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if _, err := s.AddComment(context.Background(), "vol", report.ID, "   "); !errors.Is(err, common.ErrorInvalidArgument) {
		t.Fatalf("want ErrorInvalidArgument for empty body, got %v", err)
	}

	list, err := s.ListComments(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("ListComments error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("want 1 comment, got %d", len(list))
	}
}

func TestGetRandomStorageKey(t *testing.T) {
	k1 := GetRandomStorageKey()
	k2 := GetRandomStorageKey()
	if !strings.HasPrefix(k1, "photos/") {
		t.Fatalf("unexpected key: %s", k1)
	}
	if k1 == k2 {
		t.Fatalf("keys should be unique: %s", k1)
	}
}

func TestGetPresignedPutUrl(t *testing.T) {
	s := newTestReportService(t, reportFixtureManager())

	orig := presignPutObject
	defer func() { presignPutObject = orig }()

	var gotContentType string
	presignPutObject = func(ctx context.Context, c *s3.PresignClient, input *s3.PutObjectInput) (string, error) {
		if input.ContentType != nil {
			gotContentType = *input.ContentType
		}
		return "http://127.0.0.1:9000/floodwatch/" + *input.Key, nil
	}

	key, url, err := s.GetPresignedPutUrl(context.Background(), "image/jpeg")
	if err != nil {
		t.Fatalf("GetPresignedPutUrl error: %v", err)
	}
	if !strings.HasPrefix(key, "photos/") || !strings.HasSuffix(url, key) {
		t.Fatalf("unexpected key/url: %s %s", key, url)
	}
	if gotContentType != "image/jpeg" {
		t.Fatalf("content type not forwarded: %q", gotContentType)
	}
}

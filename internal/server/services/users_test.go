package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/roles"
	"github.com/vkozyrev/floodwatch/internal/server/models"
)

func newUserService(t *testing.T, rm *fakeRepoManager) *UserService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	return NewUserService(db, rm, discardLogger())
}

func TestGetProfile(t *testing.T) {
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{profiles: map[string]*models.Profile{
		"u-1": {ID: "u-1", Name: "Alice", Role: roles.Regular},
	}}}
	s := newUserService(t, rm)

	p, err := s.GetProfile(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if p.Name != "Alice" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	_, err = s.GetProfile(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestSaveProfile_SelfWrite(t *testing.T) {
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{profiles: map[string]*models.Profile{
		"u-1": {ID: "u-1", Role: roles.Volunteer},
	}}}
	s := newUserService(t, rm)

	saved, err := s.SaveProfile(context.Background(), "u-1", &models.Profile{
		ID: "u-1", Name: "Alice", Role: roles.Volunteer, City: "Riga",
	})
	if err != nil {
		t.Fatalf("SaveProfile error: %v", err)
	}
	if saved.City != "Riga" {
		t.Fatalf("unexpected profile: %+v", saved)
	}
}

func TestSaveProfile_SelfCannotRaiseRole(t *testing.T) {
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{profiles: map[string]*models.Profile{
		"u-1": {ID: "u-1", Role: roles.Regular},
	}}}
	s := newUserService(t, rm)

	_, err := s.SaveProfile(context.Background(), "u-1", &models.Profile{ID: "u-1", Role: roles.Admin})
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestSaveProfile_SelfCanLowerRole(t *testing.T) {
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{profiles: map[string]*models.Profile{
		"u-1": {ID: "u-1", Role: roles.Volunteer},
	}}}
	s := newUserService(t, rm)

	saved, err := s.SaveProfile(context.Background(), "u-1", &models.Profile{ID: "u-1", Role: roles.Regular})
	if err != nil {
		t.Fatalf("SaveProfile error: %v", err)
	}
	if saved.Role != roles.Regular {
		t.Fatalf("role not lowered: %+v", saved)
	}
}

func TestSaveProfile_FirstWriteAllowsVolunteer(t *testing.T) {
	// A caller with no profile yet may self-assign up to volunteer, so
	// registration with a requested volunteer role works. Admin still does not.
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{}}
	s := newUserService(t, rm)

	if _, err := s.SaveProfile(context.Background(), "u-new", &models.Profile{ID: "u-new", Role: roles.Volunteer}); err != nil {
		t.Fatalf("SaveProfile error: %v", err)
	}

	rm2 := &fakeRepoManager{profiles: &fakeProfilesRepo{}}
	s2 := newUserService(t, rm2)
	if _, err := s2.SaveProfile(context.Background(), "u-new", &models.Profile{ID: "u-new", Role: roles.Admin}); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestSaveProfile_CrossWriteRequiresAdmin(t *testing.T) {
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{profiles: map[string]*models.Profile{
		"admin": {ID: "admin", Role: roles.Admin},
		"vol":   {ID: "vol", Role: roles.Volunteer},
		"u-1":   {ID: "u-1", Role: roles.Regular},
	}}}
	s := newUserService(t, rm)

	if _, err := s.SaveProfile(context.Background(), "vol", &models.Profile{ID: "u-1", Role: roles.Regular}); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized for non-admin cross write, got %v", err)
	}

	saved, err := s.SaveProfile(context.Background(), "admin", &models.Profile{ID: "u-1", Role: roles.Volunteer})
	if err != nil {
		t.Fatalf("admin cross write error: %v", err)
	}
	if saved.Role != roles.Volunteer {
		t.Fatalf("role not applied: %+v", saved)
	}
}

func TestSaveProfile_RejectsInvalidInput(t *testing.T) {
	rm := &fakeRepoManager{profiles: &fakeProfilesRepo{}}
	s := newUserService(t, rm)

	if _, err := s.SaveProfile(context.Background(), "u-1", &models.Profile{Role: roles.Regular}); !errors.Is(err, common.ErrorInvalidRole) {
		t.Fatalf("want ErrorInvalidRole for empty id, got %v", err)
	}
	if _, err := s.SaveProfile(context.Background(), "u-1", &models.Profile{ID: "u-1", Role: "superuser"}); !errors.Is(err, common.ErrorInvalidRole) {
		t.Fatalf("want ErrorInvalidRole for unknown role, got %v", err)
	}
}

package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/logging"
	"github.com/vkozyrev/floodwatch/internal/roles"
	"github.com/vkozyrev/floodwatch/internal/server/models"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/repomanager"
)

// UserService is the document-store surface for user profiles.
//
// Write rules:
//   - a user may write their own profile, but cannot grant themselves a role
//     above their current one;
//   - writing someone else's profile requires the admin role.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{db: db, repomanager: m, logger: logger.With("module", "users")}
}

// GetProfile returns the profile by account id.
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, id)
}

// SaveProfile creates or replaces a profile on behalf of callerID.
func (s *UserService) SaveProfile(ctx context.Context, callerID string, profile *models.Profile) (*models.Profile, error) {
	if profile.ID == "" || !roles.Valid(profile.Role) {
		return nil, common.ErrorInvalidRole
	}

	if err := s.authorizeWrite(ctx, callerID, profile); err != nil {
		return nil, err
	}

	saved, err := s.repomanager.Profiles(s.db).Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "profile saved", "user", profile.ID, "by", callerID)
	return saved, nil
}

func (s *UserService) authorizeWrite(ctx context.Context, callerID string, profile *models.Profile) error {
	callerRole, err := s.callerRole(ctx, callerID)
	if err != nil {
		return err
	}

	if callerID != profile.ID {
		if callerRole != roles.Admin {
			return common.ErrorUnauthorized
		}
		return nil
	}

	// Self-writes may keep or lower the role, never raise it.
	if !roles.HasPermission(callerRole, profile.Role) {
		return common.ErrorUnauthorized
	}
	return nil
}

// callerRole resolves the caller's current role. A caller without a profile
// yet (first write after registration) counts as the top of what they can
// self-assign below admin.
func (s *UserService) callerRole(ctx context.Context, callerID string) (roles.Role, error) {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return roles.Volunteer, nil
		}
		return "", common.ErrorInternal
	}
	return p.Role, nil
}

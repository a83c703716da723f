// Package services contains server-side business logic. This file implements
// IdentityService: account registration, sign-in, token issue/refresh,
// sign-out, and password-reset issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/dbx"
	"github.com/vkozyrev/floodwatch/internal/logging"
	"github.com/vkozyrev/floodwatch/internal/server/auth"
	"github.com/vkozyrev/floodwatch/internal/server/config"
	"github.com/vkozyrev/floodwatch/internal/server/models"
	"github.com/vkozyrev/floodwatch/internal/server/password"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IdentityService provides authentication-related operations:
//   - Register: create accounts and mint tokens
//   - SignIn: verify credentials and mint tokens
//   - Refresh: rotate refresh tokens and mint new access tokens
//   - SignOut: revoke all of a user's refresh tokens
//   - SendPasswordReset: issue a reset token for out-of-band delivery
type IdentityService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	resetTokenValidityDuration   time.Duration
}

// NewIdentityService constructs an IdentityService from repositories and
// server config.
func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *IdentityService {
	return &IdentityService{
		db:                           db,
		repomanager:                  m,
		logger:                       logger.With("module", "identity"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		resetTokenValidityDuration:   cfg.ResetTokenValidityDuration,
	}
}

// Register validates the credentials, creates the account, and opens a
// session. A duplicate email yields common.ErrorAlreadyExists.
func (s *IdentityService) Register(ctx context.Context, email, plainPassword, displayName string) (*models.Account, *TokenPair, error) {
	if err := password.ValidateEmail(email); err != nil {
		return nil, nil, err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, nil, err
	}

	account := &models.Account{Email: email, PasswordHash: hash, DisplayName: displayName}
	account, err = s.repomanager.Accounts(s.db).Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error creating account: %w", err)
	}

	pair, err := s.generateTokenPair(ctx, account.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// SignIn verifies the email/password pair and, on success, returns the
// account and a new TokenPair. Unknown emails and wrong passwords both map
// to common.ErrorUnauthorized; disabled accounts to common.ErrorAccountDisabled.
func (s *IdentityService) SignIn(ctx context.Context, email, plainPassword string) (*models.Account, *TokenPair, error) {
	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if !password.Verify(account.PasswordHash, plainPassword) {
		return nil, nil, common.ErrorUnauthorized
	}
	if account.Disabled {
		return nil, nil, common.ErrorAccountDisabled
	}

	pair, err := s.generateTokenPair(ctx, account.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// Refresh validates a refresh token, rotates it transactionally, and returns
// the account with a fresh TokenPair. Expired tokens yield
// common.ErrRefreshTokenExpired; unknown ones common.ErrorUnauthorized.
func (s *IdentityService) Refresh(ctx context.Context, refreshToken string) (*models.Account, *TokenPair, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, nil, common.ErrRefreshTokenExpired
	}

	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}
	if account.Disabled {
		return nil, nil, common.ErrorAccountDisabled
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// SignOut revokes every refresh token belonging to userID.
func (s *IdentityService) SignOut(ctx context.Context, userID string) error {
	return s.repomanager.RefreshTokens(s.db).DeleteAllForUser(ctx, userID)
}

// SendPasswordReset issues a reset token for the account behind email. The
// token is stored and logged for the delivery pipeline; an unknown email is
// a silent success so the endpoint does not leak account existence.
func (s *IdentityService) SendPasswordReset(ctx context.Context, email string) error {
	if err := password.ValidateEmail(email); err != nil {
		return err
	}

	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return common.ErrorInternal
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.repomanager.ResetTokens(s.db).Create(ctx, account.ID, token, s.resetTokenValidityDuration); err != nil {
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "password reset token issued", "user", account.ID, "token", token)
	return nil
}

// --- helpers below ---

func (s *IdentityService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *IdentityService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *IdentityService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

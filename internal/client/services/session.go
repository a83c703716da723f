// Package services contains application services for the FloodWatch client.
// This file implements the session service: registration, login, logout,
// password reset, role updates, and session restoration from the provider or
// the on-device credential cache.
package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/vkozyrev/floodwatch/internal/client/client"
	"github.com/vkozyrev/floodwatch/internal/client/models"
	"github.com/vkozyrev/floodwatch/internal/client/repositories/credentials"
	"github.com/vkozyrev/floodwatch/internal/client/session"
	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/logging"
	"github.com/vkozyrev/floodwatch/internal/netx"
	"github.com/vkozyrev/floodwatch/internal/roles"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 8

// SessionService owns the session state machine: the observable state
// holder, the credential cache, and the 90-day expiry policy. Every phase
// mutation funnels through a single consumer goroutine, so concurrent
// UI-triggered operations serialize deterministically instead of racing on
// last-write-wins.
//
// Remote errors never escape this boundary as raw errors: they become a
// Failed phase with a mapped, ready-to-display message. Cache read/write
// problems are swallowed (a broken cache behaves like an empty one).
type SessionService struct {
	client client.Client
	store  client.DocumentStore
	cache  credentials.Store
	state  *session.StateHolder
	probe  netx.Prober
	logger logging.Logger
	now    func() time.Time

	ops  chan func()
	done chan struct{}
}

// NewSessionService wires the service and starts its operation queue.
// Call Close to stop the queue.
func NewSessionService(
	c client.Client,
	store client.DocumentStore,
	cache credentials.Store,
	probe netx.Prober,
	logger logging.Logger,
) *SessionService {
	s := &SessionService{
		client: c,
		store:  store,
		cache:  cache,
		state:  session.NewStateHolder(),
		probe:  probe,
		logger: logger.With("module", "session"),
		now:    time.Now,
		ops:    make(chan func(), 8),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *SessionService) run() {
	defer close(s.done)
	for op := range s.ops {
		op()
	}
}

// Close stops the operation queue after draining queued operations.
func (s *SessionService) Close() {
	close(s.ops)
	<-s.done
}

// submit runs op on the consumer goroutine and waits for it to finish.
// Cancellation while waiting leaves the operation's outcome undefined;
// callers re-query state.
func (s *SessionService) submit(ctx context.Context, op func()) error {
	wrapped := make(chan struct{})
	select {
	case s.ops <- func() { defer close(wrapped); op() }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-wrapped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State exposes the observable state holder for UI layers.
func (s *SessionService) State() *session.StateHolder { return s.state }

// CurrentUser is the accessor every other view-model reads.
func (s *SessionService) CurrentUser() *models.UserRecord { return s.state.CurrentUser() }

// Restore decides, on process start or app resume, whether to reopen a
// provider session, resume from the encrypted cache, or force
// re-authentication.
func (s *SessionService) Restore(ctx context.Context) error {
	return s.submit(ctx, func() { s.restore(ctx) })
}

func (s *SessionService) restore(ctx context.Context) {
	s.state.UpdateState(session.PhaseRestoring(), nil)

	if record := s.restoreProviderSession(ctx); record != nil {
		s.completeLogin(ctx, record)
		return
	}

	if record := s.restoreCachedSession(ctx); record != nil {
		s.logger.Info(ctx, "resumed cached session offline", "user", record.ID)
		s.state.UpdateState(session.PhaseAuthenticated(), record)
		return
	}

	// Nothing resumable: clear defensively and force re-authentication.
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "cache clear failed", "error", err)
	}
	s.state.ResetState()
}

// restoreProviderSession reopens the remote session from the persisted
// refresh token. Any failure (no token, unreachable backend, revoked token)
// yields nil so the caller can fall back to the cached record.
func (s *SessionService) restoreProviderSession(ctx context.Context) *models.UserRecord {
	token, err := s.cache.ProviderToken(ctx)
	if err != nil || token == "" {
		return nil
	}
	if !s.probe.IsReachable(ctx) {
		return nil
	}

	sess, err := s.client.Resume(ctx, token)
	if err != nil {
		s.logger.Warn(ctx, "provider session resume failed", "error", err)
		return nil
	}

	record, err := s.fetchOrCreateRecord(ctx, sess, "", "")
	if err != nil {
		s.logger.Warn(ctx, "profile fetch after resume failed", "error", err)
		return nil
	}
	return record
}

// restoreCachedSession returns the cached record when present and within the
// 90-day TTL, nil otherwise. No remote calls.
func (s *SessionService) restoreCachedSession(ctx context.Context) *models.UserRecord {
	userJSON, err := s.cache.GetCached(ctx)
	if err != nil || userJSON == nil {
		return nil
	}

	record, err := models.UserRecordFromJSON(userJSON)
	if err != nil {
		// Malformed cached JSON counts as no cached user.
		return nil
	}

	loginTime, err := s.cache.InitialLoginTime(ctx)
	if err != nil || loginTime == 0 {
		return nil
	}
	if s.now().Sub(time.UnixMilli(loginTime)) > common.CachedSessionTTL {
		return nil
	}
	return record
}

// Register creates the provider account, reconciles the profile record in
// the document store (applying the requested role when it differs from the
// provider default), and authenticates the new user.
func (s *SessionService) Register(ctx context.Context, email, password, name string, role roles.Role) error {
	return s.submit(ctx, func() {
		if !s.validateCredentials(email, password) {
			return
		}
		if !roles.Valid(role) {
			s.state.UpdateState(session.PhaseFailed(session.ErrorValidation, MsgInvalidRole), nil)
			return
		}

		s.state.UpdateState(session.PhaseLoading(session.LoadingRegistering), nil)

		record, err := netx.Execute(ctx, s.probe, func(ctx context.Context) (*models.UserRecord, error) {
			sess, err := s.client.CreateAccount(ctx, email, password, name)
			if err != nil {
				return nil, err
			}
			return s.fetchOrCreateRecord(ctx, sess, name, role)
		})
		if err != nil {
			s.failPhase(ctx, err)
			return
		}
		s.completeLogin(ctx, record)
	})
}

// Login authenticates against the provider and fetches the profile record
// by id.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	return s.submit(ctx, func() {
		if !s.validateCredentials(email, password) {
			return
		}

		s.state.UpdateState(session.PhaseLoading(session.LoadingLoggingIn), nil)

		record, err := netx.Execute(ctx, s.probe, func(ctx context.Context) (*models.UserRecord, error) {
			sess, err := s.client.SignIn(ctx, email, password)
			if err != nil {
				return nil, err
			}
			return s.fetchOrCreateRecord(ctx, sess, "", "")
		})
		if err != nil {
			s.failPhase(ctx, err)
			return
		}
		s.completeLogin(ctx, record)
	})
}

// Logout signs out best-effort and always clears the cache. It is never
// network-gated.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.submit(ctx, func() {
		err := s.client.SignOut(ctx)

		if cerr := s.cache.Clear(ctx); cerr != nil {
			s.logger.Warn(ctx, "cache clear failed", "error", cerr)
		}

		if err != nil {
			s.logger.Warn(ctx, "sign-out failed", "error", err)
			_, msg := MapError(err)
			s.state.UpdateState(session.PhaseFailed(session.ErrorAuthentication, msg), nil)
			return
		}
		s.state.ResetState()
	})
}

// ResetPassword requests a password-reset email.
func (s *SessionService) ResetPassword(ctx context.Context, email string) error {
	return s.submit(ctx, func() {
		if !emailPattern.MatchString(email) {
			s.state.UpdateState(session.PhaseFailed(session.ErrorValidation, MsgInvalidEmail), nil)
			return
		}

		s.state.UpdateState(session.PhaseLoading(session.LoadingResettingPassword), nil)

		err := netx.ExecuteErr(ctx, s.probe, func(ctx context.Context) error {
			return s.client.SendPasswordReset(ctx, email)
		})
		if err != nil {
			s.failPhase(ctx, err)
			return
		}
		s.state.UpdateState(session.PhaseResetSent(), nil)
	})
}

// UpdateUserRole changes a user's role in the document store. An unchanged
// role is a success no-op; when the target is the current user the in-memory
// snapshot is refreshed. Errors surface as return values, never as phase
// transitions.
func (s *SessionService) UpdateUserRole(ctx context.Context, userID string, role roles.Role) (*models.UserRecord, error) {
	var record *models.UserRecord
	var opErr error

	err := s.submit(ctx, func() {
		if !roles.Valid(role) {
			opErr = common.ErrorInvalidRole
			return
		}

		current, err := s.store.GetUser(ctx, userID)
		if err != nil {
			opErr = err
			return
		}
		if current.Role == role {
			record = current
			return
		}

		current.Role = role
		current.UpdatedAt = s.now()
		saved, err := s.store.SaveUser(ctx, current)
		if err != nil {
			opErr = err
			return
		}

		if cu := s.state.CurrentUser(); cu != nil && cu.ID == userID {
			s.state.UpdateCurrentUser(saved)
		}
		record = saved
	})
	if err != nil {
		return nil, err
	}
	return record, opErr
}

// --- helpers below ---

func (s *SessionService) validateCredentials(email, password string) bool {
	if !emailPattern.MatchString(email) {
		s.state.UpdateState(session.PhaseFailed(session.ErrorValidation, MsgInvalidEmail), nil)
		return false
	}
	if len(password) < minPasswordLen {
		s.state.UpdateState(session.PhaseFailed(session.ErrorValidation, MsgWeakPassword), nil)
		return false
	}
	return true
}

// fetchOrCreateRecord reconciles the provider session against the document
// store by id. A missing record is created from the provider defaults,
// applying the requested name/role when given; an existing record wins over
// provider defaults except for an explicitly requested differing role.
func (s *SessionService) fetchOrCreateRecord(ctx context.Context, sess *client.Session, name string, role roles.Role) (*models.UserRecord, error) {
	record, err := s.store.GetUser(ctx, sess.ID)
	if err == nil {
		if role != "" && roles.Valid(role) && record.Role != role {
			record.Role = role
			record.UpdatedAt = s.now()
			return s.store.SaveUser(ctx, record)
		}
		return record, nil
	}
	if !errors.Is(err, client.ErrUserNotFound) && !errors.Is(err, client.ErrNotFound) {
		return nil, err
	}

	displayName := name
	if displayName == "" {
		displayName = sess.DisplayName
	}
	newRole := role
	if !roles.Valid(newRole) {
		newRole = roles.Default
	}

	now := s.now()
	return s.store.SaveUser(ctx, &models.UserRecord{
		ID:        sess.ID,
		Name:      displayName,
		Email:     sess.Email,
		PhotoURL:  sess.PhotoURL,
		Role:      newRole,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// completeLogin refreshes the credential cache and moves to Authenticated.
// Cache failures are logged and swallowed; the login itself succeeded.
func (s *SessionService) completeLogin(ctx context.Context, record *models.UserRecord) {
	if userJSON, err := record.MarshalJSONBytes(); err == nil {
		if err := s.cache.Cache(ctx, userJSON, s.now().UnixMilli()); err != nil {
			s.logger.Warn(ctx, "session cache write failed", "error", err)
		}
	}
	if token := s.client.SessionToken(); token != "" {
		if err := s.cache.SetProviderToken(ctx, token); err != nil {
			s.logger.Warn(ctx, "provider token persist failed", "error", err)
		}
	}
	s.state.UpdateState(session.PhaseAuthenticated(), record)
}

func (s *SessionService) failPhase(ctx context.Context, err error) {
	kind, msg := MapError(err)
	s.logger.Warn(ctx, "session operation failed", "kind", string(kind), "error", err)
	s.state.UpdateState(session.PhaseFailed(kind, msg), nil)
}

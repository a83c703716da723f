// Package common defines shared constants and sentinel errors used across
// client and server layers of FloodWatch. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (bad input before any remote call).
	ErrorInvalidArgument    = errors.New("invalid argument")
	ErrorInvalidEmailFormat = errors.New("invalid email format")
	ErrorWeakPassword       = errors.New("weak password")
	ErrorInvalidRole        = errors.New("invalid role")

	// Account state.
	ErrorAccountDisabled = errors.New("account disabled")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

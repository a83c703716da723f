package client

import "errors"

// Sentinel errors produced by the gateway's error mapping. The session layer
// translates these into user-facing Failed phases; raw transport errors stay
// below this boundary.
var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserDisabled    = errors.New("user disabled")
	ErrEmailInUse      = errors.New("email already in use")
	ErrWeakPassword    = errors.New("weak password")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrNoSession       = errors.New("no active session")
)

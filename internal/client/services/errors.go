package services

import (
	"errors"

	"github.com/vkozyrev/floodwatch/internal/client/client"
	"github.com/vkozyrev/floodwatch/internal/client/session"
	"github.com/vkozyrev/floodwatch/internal/netx"
)

// Ready-to-display messages for every mapped failure. The raw error text is
// used only as a last-resort fallback for unmapped kinds.
const (
	MsgInvalidEmail  = "The email address is badly formatted."
	MsgWeakPassword  = "Password should be at least 8 characters."
	MsgWrongPassword = "Incorrect email or password."
	MsgUserNotFound  = "No account found for this email."
	MsgUserDisabled  = "This account has been disabled."
	MsgEmailInUse    = "An account with this email already exists."
	MsgInvalidRole   = "Unknown role."
)

// MapError classifies an error from the gateway or the connectivity gate
// into the phase error taxonomy with its user-facing message.
func MapError(err error) (session.ErrorKind, string) {
	switch {
	case errors.Is(err, netx.ErrNoConnection), errors.Is(err, client.ErrUnavailable):
		return session.ErrorNetwork, netx.NoConnectionMessage
	case errors.Is(err, client.ErrInvalidEmail):
		return session.ErrorValidation, MsgInvalidEmail
	case errors.Is(err, client.ErrWeakPassword):
		return session.ErrorValidation, MsgWeakPassword
	case errors.Is(err, client.ErrUnauthorized):
		return session.ErrorAuthentication, MsgWrongPassword
	case errors.Is(err, client.ErrUserNotFound), errors.Is(err, client.ErrNotFound):
		return session.ErrorAuthentication, MsgUserNotFound
	case errors.Is(err, client.ErrUserDisabled):
		return session.ErrorAuthentication, MsgUserDisabled
	case errors.Is(err, client.ErrEmailInUse):
		return session.ErrorAuthentication, MsgEmailInUse
	default:
		return session.ErrorGeneric, err.Error()
	}
}

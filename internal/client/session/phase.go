// Package session holds the authentication state machine's observable state:
// the current phase and the current user snapshot. Only the session service
// writes; any number of observers may read concurrently.
package session

import "github.com/vkozyrev/floodwatch/internal/client/models"

// PhaseKind enumerates the top-level authentication phases. Exactly one is
// active at a time.
type PhaseKind string

const (
	Uninitialized     PhaseKind = "uninitialized"
	Restoring         PhaseKind = "restoring"
	Loading           PhaseKind = "loading"
	Authenticated     PhaseKind = "authenticated"
	Unauthenticated   PhaseKind = "unauthenticated"
	PasswordResetSent PhaseKind = "password_reset_sent"
	Failed            PhaseKind = "failed"
)

// LoadingKind qualifies a Loading phase.
type LoadingKind string

const (
	LoadingNone              LoadingKind = ""
	LoadingRegistering       LoadingKind = "registering"
	LoadingLoggingIn         LoadingKind = "logging_in"
	LoadingResettingPassword LoadingKind = "resetting_password"
)

// ErrorKind qualifies a Failed phase.
type ErrorKind string

const (
	ErrorNone           ErrorKind = ""
	ErrorValidation     ErrorKind = "validation"
	ErrorAuthentication ErrorKind = "authentication"
	ErrorNetwork        ErrorKind = "network"
	ErrorGeneric        ErrorKind = "generic"
)

// Phase is a tagged variant: Kind selects which of the qualifier fields is
// meaningful. Message is set only for Failed phases and is ready to display.
type Phase struct {
	Kind    PhaseKind
	Loading LoadingKind
	Err     ErrorKind
	Message string
}

func PhaseUninitialized() Phase   { return Phase{Kind: Uninitialized} }
func PhaseRestoring() Phase       { return Phase{Kind: Restoring} }
func PhaseUnauthenticated() Phase { return Phase{Kind: Unauthenticated} }
func PhaseAuthenticated() Phase   { return Phase{Kind: Authenticated} }
func PhaseResetSent() Phase       { return Phase{Kind: PasswordResetSent} }

func PhaseLoading(k LoadingKind) Phase { return Phase{Kind: Loading, Loading: k} }

func PhaseFailed(kind ErrorKind, message string) Phase {
	return Phase{Kind: Failed, Err: kind, Message: message}
}

// Snapshot is the state visible to observers at one point in time.
type Snapshot struct {
	Phase Phase
	User  *models.UserRecord
}

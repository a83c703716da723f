// Package common contains shared constants and sentinel errors used across
// FloodWatch components.
package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// CachedSessionTTL is how long a locally cached session stays resumable
// without re-authenticating against the identity backend.
const CachedSessionTTL = 90 * 24 * time.Hour

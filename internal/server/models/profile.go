package models

import (
	"time"

	"github.com/vkozyrev/floodwatch/internal/roles"
)

// Profile is the document-store record for a user. It shares its ID with the
// user's Account but is written through the profile API, so the two can
// drift on name and photo until the client reconciles them.
type Profile struct {
	ID        string
	Name      string
	Email     string
	PhotoURL  string
	Role      roles.Role
	City      string
	County    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

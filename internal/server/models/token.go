package models

import "time"

// RefreshToken is a server-stored, single-use token for session restoration.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// PasswordResetToken is a short-lived token emailed to the user. The server
// only records issuance; delivery is out of band.
type PasswordResetToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is an identity-provider record. It carries only what is needed to
// authenticate; profile data lives in Profile.
type Account struct {
	ID           string
	Email        string
	PasswordHash []byte
	DisplayName  string
	PhotoURL     string
	Disabled     bool
	CreatedAt    time.Time
}

// Package models defines the client-side domain records exchanged with the
// backend and persisted in the credential cache.
package models

import (
	"encoding/json"
	"time"

	"github.com/vkozyrev/floodwatch/internal/roles"
)

// UserRecord is the identity + profile snapshot for one account. The ID is
// assigned by the identity provider on registration; the rest lives in the
// document store and is mutated on profile or role edits. Records are never
// deleted.
type UserRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	PhotoURL  string     `json:"photoUrl,omitempty"`
	Role      roles.Role `json:"role"`
	City      string     `json:"city,omitempty"`
	County    string     `json:"county,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MarshalJSONBytes serializes the record for the credential cache.
func (u *UserRecord) MarshalJSONBytes() ([]byte, error) {
	return json.Marshal(u)
}

// UserRecordFromJSON deserializes a cached record. Malformed input returns
// an error; callers at the cache boundary treat that as "no cached user".
func UserRecordFromJSON(b []byte) (*UserRecord, error) {
	var u UserRecord
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

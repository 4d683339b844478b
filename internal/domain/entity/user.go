// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, the owner of recipes and sessions.
// The password hash intentionally does not live here: it is kept on the
// Credential record and is only ever consumed by the password hasher, never
// read back as an attribute of the user.
type User struct {
	ID        uuid.UUID // Unique identifier for the user, assigned on creation.
	Username  string    // Login identifier, unique across all users (case-sensitive).
	ImageURL  string    // Optional avatar/profile image URL.
	Bio       string    // Optional free-text biography.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

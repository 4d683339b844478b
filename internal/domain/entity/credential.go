package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential holds the password-derived secret for a user. It is a separate
// record so the hash stays write-only from the point of view of the User
// entity: the only operations that touch it are creation at signup and the
// hash comparison at login.
type Credential struct {
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this credential was stored.
}

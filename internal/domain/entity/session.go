package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated login. The client holds the raw opaque
// token in a cookie; only a SHA-256 hash of it is stored here for lookup.
// Sessions carry no expiry: they stay valid until explicitly destroyed.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw session token.
	CreatedAt time.Time // Timestamp of when this session was created (login time).
}

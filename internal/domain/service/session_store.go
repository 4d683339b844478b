package service

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore issues, resolves and destroys opaque session tokens. The token
// is the only credential the client holds after login; the store maps it back
// to the authenticated user on every request. Sessions never expire on their
// own; they live until destroyed.
type SessionStore interface {
	// Create issues a new session bound to the user and returns the raw token
	// for the client to hold.
	Create(ctx context.Context, userID uuid.UUID) (string, error)

	// Resolve returns the user the token belongs to, or
	// repository.ErrSessionNotFound when the token is absent or unknown.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)

	// Destroy removes the session for the token. It reports true when a
	// session existed and was removed, false when there was nothing to remove.
	Destroy(ctx context.Context, token string) (bool, error)

	// DestroyAllForUser removes every session of the given user.
	DestroyAllForUser(ctx context.Context, userID uuid.UUID) error
}

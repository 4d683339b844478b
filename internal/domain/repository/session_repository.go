package repository

import (
	"context"
	"errors"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session token does not resolve.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence for login sessions. Rows are keyed by
// the SHA-256 hash of the opaque token the client holds; the raw token never
// reaches storage.
type SessionRepository interface {
	// Create persists a new session, representing one login.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its stored token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session with the given token hash and
	// reports how many rows were removed (zero when the token was unknown).
	DeleteByTokenHash(ctx context.Context, tokenHash string) (int64, error)

	// DeleteByUserID removes every session belonging to a user, ending all of
	// their logins at once.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

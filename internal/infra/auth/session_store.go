package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"ladle/internal/domain/entity"
	"ladle/internal/domain/repository"
	"ladle/internal/domain/service"
	"ladle/internal/errors"

	"github.com/google/uuid"
)

// tokenByteLen is the entropy of a raw session token before hex encoding.
const tokenByteLen = 32

type dbSessionStore struct {
	sessions repository.SessionRepository
	logger   *slog.Logger
}

// NewDBSessionStore creates a SessionStore backed by the sessions table.
// Only the SHA-256 hash of a token is ever persisted; the raw token exists
// in the client's cookie and nowhere else.
func NewDBSessionStore(sessions repository.SessionRepository, logger *slog.Logger) service.SessionStore {
	return &dbSessionStore{
		sessions: sessions,
		logger:   logger,
	}
}

// Create issues a fresh random token, stores its hash and returns the raw
// token. Each call represents one login; a user may hold many at once.
func (s *dbSessionStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	raw := make([]byte, tokenByteLen)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "rand.Read")
	}
	token := hex.EncodeToString(raw)

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(token),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", errors.Wrap(err, "sessions.Create")
	}

	s.logger.DebugContext(ctx, "session created", slog.String("user_id", userID.String()))

	return token, nil
}

// Resolve maps a raw token back to its user. Unknown and empty tokens both
// yield repository.ErrSessionNotFound.
func (s *dbSessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, repository.ErrSessionNotFound
	}

	session, err := s.sessions.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		return uuid.Nil, err
	}

	return session.UserID, nil
}

// Destroy removes the session for the token, reporting whether one existed.
func (s *dbSessionStore) Destroy(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	deleted, err := s.sessions.DeleteByTokenHash(ctx, hashToken(token))
	if err != nil {
		return false, errors.Wrap(err, "sessions.DeleteByTokenHash")
	}

	return deleted > 0, nil
}

// DestroyAllForUser ends every login the user currently holds.
func (s *dbSessionStore) DestroyAllForUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "sessions.DeleteByUserID")
	}

	s.logger.DebugContext(ctx, "all sessions destroyed", slog.String("user_id", userID.String()))

	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

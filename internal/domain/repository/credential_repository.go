package repository

import (
	"context"
	"errors"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when a user has no stored credential.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists password hashes separately from user rows.
// There is deliberately no update or read-back of the hash outside the login
// comparison; credentials are written once at signup.
type CredentialRepository interface {
	// Create persists the credential for a newly registered user.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUserID retrieves the credential belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}

// Package auth provides the concrete credential and session primitives:
// password hashing and opaque session token management.
package auth

import (
	"strings"

	"ladle/config"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/service"
	"ladle/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a PasswordHasher with the configured bcrypt cost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// NewBcryptHasherWithCost creates a PasswordHasher with an explicit cost.
// Costs outside bcrypt's supported range fall back to the library default.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash of the plaintext password. Empty or
// whitespace-only plaintext is rejected outright; there is no fallback value.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", domainerrors.ErrInvalidCredentialInput.WrapMessage("hash password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(hashed), nil
}

// Check reports whether the plaintext password matches the stored hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

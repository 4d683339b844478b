// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ladle/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with the raw session
// token the client must hold for subsequent requests.
type AuthOutput struct {
	User         *entity.User
	SessionToken string
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Signup registers a new account and logs it in immediately.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login verifies the credentials and opens a new session. Each login adds
	// a session; existing ones stay valid.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout destroys the session behind the token.
	Logout(ctx context.Context, token string) error

	// LogoutAll destroys every session of the user behind the token.
	LogoutAll(ctx context.Context, token string) error

	// CheckSession resolves the token back to its user.
	CheckSession(ctx context.Context, token string) (*entity.User, error)
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ladle/internal/delivery/context"
	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	"ladle/internal/domain/service"
	"ladle/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	users       repository.UserRepository
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	sessions    service.SessionStore
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	users repository.UserRepository,
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	sessions service.SessionStore,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:   txManager,
		users:       users,
		credentials: credentials,
		hasher:      hasher,
		sessions:    sessions,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and opens its first session. The user row
// and credential row are written in one transaction; a failure on either
// leaves no trace of the account.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	// Hash before opening the transaction; bcrypt is deliberately slow.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		credRepo := repoFactory.CredentialRepo()

		// 1. Reject a taken username up front. The unique index still
		// backstops the race between this check and the insert.
		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "check username availability")
		}

		// 2. Create the user and its credential together.
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		return credRepo.Create(ctx, &entity.Credential{
			UserID:       user.ID,
			PasswordHash: passwordHash,
		})
	})
	if err != nil {
		return nil, err
	}

	// 3. Signup doubles as login.
	token, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "create session after signup")
	}

	srv.log(ctx).Info("user signed up", slog.String("user_id", user.ID.String()))

	return &usecase.AuthOutput{User: user, SessionToken: token}, nil
}

// Login verifies the credentials and opens a new session. Unknown usernames
// and wrong passwords collapse into the same error so neither leaks which
// part was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "find user for login")
	}

	credential, err := srv.credentials.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "find credential for login")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}

	srv.log(ctx).Info("user logged in", slog.String("user_id", user.ID.String()))

	return &usecase.AuthOutput{User: user, SessionToken: token}, nil
}

// Logout destroys the session behind the token. Only that session ends;
// other logins of the same user stay valid.
func (srv *authService) Logout(ctx context.Context, token string) error {
	removed, err := srv.sessions.Destroy(ctx, token)
	if err != nil {
		return errors.Wrap(err, "destroy session")
	}
	if !removed {
		return domainerrors.ErrNoActiveSession
	}

	srv.log(ctx).Info("user logged out")

	return nil
}

// LogoutAll ends every login of the user behind the token.
func (srv *authService) LogoutAll(ctx context.Context, token string) error {
	userID, err := srv.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrNoActiveSession
		}

		return errors.Wrap(err, "resolve session")
	}

	if err := srv.sessions.DestroyAllForUser(ctx, userID); err != nil {
		return errors.Wrap(err, "destroy all sessions")
	}

	srv.log(ctx).Info("all sessions ended", slog.String("user_id", userID.String()))

	return nil
}

// CheckSession resolves the token back to its user.
func (srv *authService) CheckSession(ctx context.Context, token string) (*entity.User, error) {
	userID, err := srv.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "resolve session")
	}

	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Session outlived its user; treat it as no session.
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "find user for session")
	}

	return user, nil
}

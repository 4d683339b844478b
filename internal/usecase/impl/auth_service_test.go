package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	mockRepo "ladle/internal/mocks/repository"
	mockSvc "ladle/internal/mocks/service"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	users       *mockRepo.MockUserRepository
	credentials *mockRepo.MockCredentialRepository
	hasher      *mockSvc.MockPasswordHasher
	sessions    *mockSvc.MockSessionStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	users := mockRepo.NewMockUserRepository(t)
	credentials := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockSvc.NewMockSessionStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(txManager, users, credentials, hasher, sessions, logger)

	return authServiceFixtures{
		service:     service,
		txManager:   txManager,
		users:       users,
		credentials: credentials,
		hasher:      hasher,
		sessions:    sessions,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "newcook",
		Password: "hunter2hunter2",
		ImageURL: "https://example.com/pic.png",
		Bio:      "makes soup",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUsers := mockRepo.NewMockUserRepository(t)
			mockCreds := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUsers)
			mockFactory.EXPECT().CredentialRepo().Return(mockCreds)

			mockUsers.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)

			mockUsers.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockCreds.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, credential *entity.Credential) {
					assert.Equal(t, "hashed_password", credential.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.sessions.EXPECT().
		Create(ctx, mock.AnythingOfType("uuid.UUID")).
		Return("session-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "newcook", output.User.Username)
	assert.Equal(t, "makes soup", output.User.Bio)
	assert.Equal(t, "session-token", output.SessionToken)
}

func TestAuthService_Signup_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.SignupInput
	}{
		{name: "no username", input: &usecase.SignupInput{Password: "secret"}},
		{name: "no password", input: &usecase.SignupInput{Username: "cook"}},
		{name: "neither", input: &usecase.SignupInput{}},
		{name: "whitespace-only username", input: &usecase.SignupInput{Username: "   ", Password: "secret"}},
		{name: "whitespace-only password", input: &usecase.SignupInput{Username: "cook", Password: " \t "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Signup(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
		})
	}
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Username: "taken", Password: "secret"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUsers := mockRepo.NewMockUserRepository(t)
			mockCreds := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUsers)
			mockFactory.EXPECT().CredentialRepo().Return(mockCreds)

			mockUsers.EXPECT().
				FindByUsername(ctx, "taken").
				Return(&entity.User{ID: uuid.New(), Username: "taken"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Signup(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().
		FindByUsername(ctx, "cook").
		Return(&entity.User{ID: userID, Username: "cook"}, nil)

	fx.credentials.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Credential{UserID: userID, PasswordHash: "stored-hash"}, nil)

	fx.hasher.EXPECT().Check("secret", "stored-hash").Return(true)

	fx.sessions.EXPECT().Create(ctx, userID).Return("fresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "cook", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "fresh-token", output.SessionToken)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.users.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().
		FindByUsername(ctx, "cook").
		Return(&entity.User{ID: userID, Username: "cook"}, nil)

	fx.credentials.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Credential{UserID: userID, PasswordHash: "stored-hash"}, nil)

	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "cook", Password: "wrong"})

	// Same error as an unknown username; the caller cannot tell which.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("live session destroyed", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().Destroy(ctx, "token").Return(true, nil)

		require.NoError(t, fx.service.Logout(ctx, "token"))
	})

	t.Run("no session behind the token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().Destroy(ctx, "stale").Return(false, nil)

		err := fx.service.Logout(ctx, "stale")
		assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		boom := errors.New("db down")

		fx.sessions.EXPECT().Destroy(ctx, "token").Return(false, boom)

		err := fx.service.Logout(ctx, "token")
		assert.ErrorIs(t, err, boom)
	})
}

func TestAuthService_LogoutAll(t *testing.T) {
	t.Run("destroys every session of the user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.sessions.EXPECT().Resolve(ctx, "token").Return(userID, nil)
		fx.sessions.EXPECT().DestroyAllForUser(ctx, userID).Return(nil)

		require.NoError(t, fx.service.LogoutAll(ctx, "token"))
	})

	t.Run("unknown token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().Resolve(ctx, "stale").Return(uuid.Nil, repository.ErrSessionNotFound)

		err := fx.service.LogoutAll(ctx, "stale")
		assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
	})
}

func TestAuthService_CheckSession(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.sessions.EXPECT().Resolve(ctx, "token").Return(userID, nil)
		fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Username: "cook"}, nil)

		user, err := fx.service.CheckSession(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "cook", user.Username)
	})

	t.Run("unknown token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.sessions.EXPECT().Resolve(ctx, "nope").Return(uuid.Nil, repository.ErrSessionNotFound)

		_, err := fx.service.CheckSession(ctx, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("session whose user is gone", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.sessions.EXPECT().Resolve(ctx, "orphan").Return(userID, nil)
		fx.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CheckSession(ctx, "orphan")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

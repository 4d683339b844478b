package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	"ladle/internal/errors"
	mockRepo "ladle/internal/mocks/repository"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validInstructions = "Chop the onions finely, brown them in butter, add the spices and simmer for an hour."

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service   usecase.RecipeUsecase
	txManager *mockRepo.MockTransactionManager
	recipes   *mockRepo.MockRecipeRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	recipes := mockRepo.NewMockRecipeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRecipeService(txManager, recipes, logger)

	return recipeServiceFixtures{
		service:   service,
		txManager: txManager,
		recipes:   recipes,
	}
}

func TestRecipeService_List(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	userID := uuid.New()

	owned := []*entity.Recipe{
		{ID: uuid.New(), Title: "First", UserID: userID},
		{ID: uuid.New(), Title: "Second", UserID: userID},
	}

	fx.recipes.EXPECT().ListByUserID(ctx, userID).Return(owned, nil)

	list, err := fx.service.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, owned, list)
}

func TestRecipeService_Get(t *testing.T) {
	t.Run("own recipe", func(t *testing.T) {
		fx := createTestRecipeService(t)
		ctx := context.Background()
		userID := uuid.New()
		recipeID := uuid.New()

		fx.recipes.EXPECT().
			FindByID(ctx, recipeID).
			Return(&entity.Recipe{ID: recipeID, Title: "Stew", UserID: userID}, nil)

		recipe, err := fx.service.Get(ctx, userID, recipeID)
		require.NoError(t, err)
		assert.Equal(t, "Stew", recipe.Title)
	})

	t.Run("someone else's recipe reads as not found", func(t *testing.T) {
		fx := createTestRecipeService(t)
		ctx := context.Background()
		recipeID := uuid.New()

		fx.recipes.EXPECT().
			FindByID(ctx, recipeID).
			Return(&entity.Recipe{ID: recipeID, UserID: uuid.New()}, nil)

		_, err := fx.service.Get(ctx, uuid.New(), recipeID)
		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})

	t.Run("missing recipe", func(t *testing.T) {
		fx := createTestRecipeService(t)
		ctx := context.Background()
		recipeID := uuid.New()

		fx.recipes.EXPECT().
			FindByID(ctx, recipeID).
			Return(nil, repository.ErrRecipeNotFound)

		_, err := fx.service.Get(ctx, uuid.New(), recipeID)
		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})
}

func TestRecipeService_Create_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	userID := uuid.New()
	minutes := 30

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipes := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipes)

			mockRecipes.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Run(func(ctx context.Context, recipe *entity.Recipe) {
					recipe.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	recipe, err := fx.service.Create(ctx, userID, &usecase.CreateRecipeInput{
		Title:             "Onion Soup",
		Instructions:      validInstructions,
		MinutesToComplete: &minutes,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, userID, recipe.UserID)
	require.NotNil(t, recipe.MinutesToComplete)
	assert.Equal(t, 30, *recipe.MinutesToComplete)
}

func TestRecipeService_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateRecipeInput
		want  []string
	}{
		{
			name:  "missing title",
			input: &usecase.CreateRecipeInput{Instructions: validInstructions},
			want:  []string{"Title is required."},
		},
		{
			name:  "whitespace title",
			input: &usecase.CreateRecipeInput{Title: "   ", Instructions: validInstructions},
			want:  []string{"Title is required."},
		},
		{
			name:  "short instructions",
			input: &usecase.CreateRecipeInput{Title: "Soup", Instructions: "Boil water."},
			want:  []string{"Instructions must be at least 50 characters long."},
		},
		{
			name:  "both violations reported together",
			input: &usecase.CreateRecipeInput{},
			want: []string{
				"Title is required.",
				"Instructions must be at least 50 characters long.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecipeService(t)

			// No transaction may start for an invalid recipe.
			_, err := fx.service.Create(context.Background(), uuid.New(), tt.input)
			require.Error(t, err)

			var validationErrs *domainerrors.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Equal(t, tt.want, validationErrs.Messages())
		})
	}
}

func TestRecipeService_Create_InstructionsRuneCount(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	// 50 multibyte runes are enough even though the byte count differs.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateRecipeInput{
		Title:        "Pho",
		Instructions: strings.Repeat("麺", minInstructionsLength),
	})
	require.NoError(t, err)
}

func TestValidateRecipe_BoundaryLength(t *testing.T) {
	at := &usecase.CreateRecipeInput{Title: "T", Instructions: strings.Repeat("a", 50)}
	assert.Empty(t, validateRecipe(at))

	below := &usecase.CreateRecipeInput{Title: "T", Instructions: strings.Repeat("a", 49)}
	assert.Equal(t, []string{"Instructions must be at least 50 characters long."}, validateRecipe(below))
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "ladle/internal/delivery/context"
	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager repository.TransactionManager
	recipes   repository.RecipeRepository
	logger    *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(
	txManager repository.TransactionManager,
	recipes repository.RecipeRepository,
	logger *slog.Logger,
) usecase.RecipeUsecase {
	return &recipeService{
		txManager: txManager,
		recipes:   recipes,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every recipe owned by the user, oldest first.
func (srv *recipeService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	recipes, err := srv.recipes.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list recipes")
	}

	return recipes, nil
}

// Get returns one recipe of the user. Recipes owned by other users are
// indistinguishable from absent ones.
func (srv *recipeService) Get(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "find recipe")
	}

	if recipe.UserID != userID {
		return nil, domainerrors.ErrRecipeNotFound
	}

	return recipe, nil
}

// Create validates and persists a new recipe owned by the user. All
// validation messages are collected before anything touches storage; a
// failing recipe is never partially persisted.
func (srv *recipeService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if messages := validateRecipe(input); len(messages) > 0 {
		return nil, domainerrors.NewValidationErrors(messages...)
	}

	recipe := &entity.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            userID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RecipeRepo().Create(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("recipe created",
		slog.String("recipe_id", recipe.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return recipe, nil
}

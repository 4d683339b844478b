package usecase

import (
	"context"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to create a recipe.
type CreateRecipeInput struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeUsecase defines the interface for recipe operations. Every operation
// is scoped to the authenticated user; there is no cross-user access.
type RecipeUsecase interface {
	// List returns every recipe owned by the user.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)

	// Get returns one recipe of the user. A recipe owned by someone else is
	// reported as not found.
	Get(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) (*entity.Recipe, error)

	// Create validates and persists a new recipe owned by the user.
	Create(ctx context.Context, userID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)
}

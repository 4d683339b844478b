package repository

import (
	"context"
	"errors"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// Create persists a new recipe entity to the storage.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// ListByUserID retrieves every recipe owned by the given user, in storage
	// order.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)
}

package postgres

import (
	"context"

	"ladle/internal/domain/entity"
	"ladle/internal/domain/repository"
	"ladle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe entity to the database.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)
	if recipeM.ID == uuid.Nil {
		recipeM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		// The owner row vanished between session resolution and the insert.
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "create recipe for missing user")
		}

		return errors.Wrap(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// ListByUserID retrieves every recipe owned by the given user, oldest first.
func (repo *recipeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by user id")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
	}
}

// Package response defines the JSON bodies of the API. The field names and
// error shapes are a contract with existing clients and must not drift.
package response

import (
	"ladle/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of a user. The password hash has no field
// here on purpose; it can never be serialized.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	ImageURL string    `json:"image_url"`
	Bio      string    `json:"bio"`
}

// RecipeResponse is the public view of a recipe.
type RecipeResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            uuid.UUID `json:"user_id"`
}

// NewUserResponse maps a user entity to its public view.
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}

// NewRecipeResponse maps a recipe entity to its public view.
func NewRecipeResponse(recipe *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		UserID:            recipe.UserID,
	}
}

// NewRecipeListResponse maps a list of recipes. An empty list serializes as
// [] rather than null.
func NewRecipeListResponse(recipes []*entity.Recipe) []RecipeResponse {
	list := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		list = append(list, NewRecipeResponse(recipe))
	}

	return list
}

// Error writes the single-message error body {"error": ...}.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}

// ValidationFailed writes the multi-message body {"errors": [...]} used by
// recipe creation.
func ValidationFailed(c echo.Context, statusCode int, messages []string) error {
	return c.JSON(statusCode, map[string][]string{"errors": messages})
}

// Empty writes a bare {} body. The session check endpoint answers with this
// instead of an error object.
func Empty(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, map[string]string{})
}

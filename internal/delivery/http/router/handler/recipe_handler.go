package handler

import (
	"log/slog"
	"net/http"

	"ladle/internal/delivery/http/response"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe handlers. Every route it
// serves sits behind the session middleware, so userID is always present.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every recipe of the authenticated user.
func (h *RecipeHandler) List(c echo.Context) error {
	userID := authenticatedUserID(c)

	recipes, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewRecipeListResponse(recipes))
}

// Get returns one recipe of the authenticated user.
func (h *RecipeHandler) Get(c echo.Context) error {
	userID := authenticatedUserID(c)

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed ID names nothing, same as an unknown one.
		return domainerrors.ErrRecipeNotFound
	}

	recipe, err := h.uc.Get(c.Request().Context(), userID, recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewRecipeResponse(recipe))
}

// Create validates and stores a new recipe owned by the authenticated user.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID := authenticatedUserID(c)

	var input usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationErrors(
			"Title is required.",
			"Instructions must be at least 50 characters long.",
		)
	}

	recipe, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewRecipeResponse(recipe))
}

// authenticatedUserID reads the user ID the session middleware stored.
func authenticatedUserID(c echo.Context) uuid.UUID {
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		return userID
	}

	return uuid.Nil
}

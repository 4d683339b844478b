package postgres

import (
	"context"
	"testing"

	"ladle/internal/domain/entity"
	"ladle/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db interface {
	Create(ctx context.Context, user *entity.User) error
}, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username}
	require.NoError(t, db.Create(context.Background(), user))

	return user
}

func TestRecipeRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "chef")

	minutes := 45
	recipe := &entity.Recipe{
		Title:             "Dal Makhani",
		Instructions:      "Soak the lentils overnight, then simmer them slowly with butter and spices for several hours.",
		MinutesToComplete: &minutes,
		UserID:            owner.ID,
	}
	require.NoError(t, recipes.Create(ctx, recipe))
	assert.NotEqual(t, uuid.Nil, recipe.ID)

	found, err := recipes.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dal Makhani", found.Title)
	assert.Equal(t, owner.ID, found.UserID)
	require.NotNil(t, found.MinutesToComplete)
	assert.Equal(t, 45, *found.MinutesToComplete)
}

func TestRecipeRepository_NilMinutes(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "chef")

	recipe := &entity.Recipe{
		Title:        "Toast",
		Instructions: "Slice the bread evenly, toast until golden brown on both sides, then butter generously.",
		UserID:       owner.ID,
	}
	require.NoError(t, recipes.Create(ctx, recipe))

	found, err := recipes.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, found.MinutesToComplete)
}

func TestRecipeRepository_ListByUserID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "owner")
	other := createTestUser(t, users, "other")

	for _, title := range []string{"First", "Second", "Third"} {
		require.NoError(t, recipes.Create(ctx, &entity.Recipe{
			Title:        title,
			Instructions: "Repeat the preparation steps carefully until the dish is finished and ready to serve hot.",
			UserID:       owner.ID,
		}))
	}
	require.NoError(t, recipes.Create(ctx, &entity.Recipe{
		Title:        "Not Mine",
		Instructions: "A different user's recipe that must never appear in the owner's listing at any point.",
		UserID:       other.ID,
	}))

	list, err := recipes.ListByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, recipe := range list {
		assert.Equal(t, owner.ID, recipe.UserID)
	}

	t.Run("user with no recipes gets an empty list", func(t *testing.T) {
		lonely := createTestUser(t, users, "lonely")

		list, err := recipes.ListByUserID(ctx, lonely.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestRecipeRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	recipes := NewRecipeRepository(db)

	_, err := recipes.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a cooking recipe owned by exactly one user.
type Recipe struct {
	ID                uuid.UUID // Unique identifier for the recipe, assigned on creation.
	Title             string    // Display title, required (non-empty after trimming).
	Instructions      string    // Preparation steps, at least 50 characters.
	MinutesToComplete *int      // Optional preparation time in minutes.
	UserID            uuid.UUID // The owning user. Required, never reassigned.
	CreatedAt         time.Time // Timestamp of when this recipe was created.
	UpdatedAt         time.Time // Timestamp of the last modification.
}

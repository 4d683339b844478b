package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Instructions      string    `gorm:"type:text;not null"`
	MinutesToComplete *int
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// All returns one instance of every model, in dependency order, for schema
// migration.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&SessionModel{},
		&RecipeModel{},
	}
}

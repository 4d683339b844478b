package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm sentinel", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm sentinel", err: errors.Wrap(gorm.ErrDuplicatedKey, "create user"), want: true},
		{name: "postgres message", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username"`), want: true},
		{name: "sqlite message", err: errors.New("UNIQUE constraint failed: users.username"), want: true},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm sentinel", err: gorm.ErrForeignKeyViolated, want: true},
		{name: "wrapped gorm sentinel", err: errors.Wrap(gorm.ErrForeignKeyViolated, "create recipe"), want: true},
		{name: "postgres message", err: errors.New(`ERROR: insert or update on table "recipes" violates foreign key constraint "fk_users_recipes"`), want: true},
		{name: "sqlite message", err: errors.New("FOREIGN KEY constraint failed"), want: true},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
		{name: "duplicate key", err: gorm.ErrDuplicatedKey, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isForeignKeyConstraintViolation(tt.err))
		})
	}
}

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

// credentialRepository implements the domain.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists the credential written at signup.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := &model.CredentialModel{
		UserID:       credential.UserID,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		return errors.Wrap(err, "failed to create credential")
	}

	credential.CreatedAt = credM.CreatedAt

	return nil
}

// FindByUserID retrieves the credential belonging to a user.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return &entity.Credential{
		UserID:       credM.UserID,
		PasswordHash: credM.PasswordHash,
		CreatedAt:    credM.CreatedAt,
	}, nil
}

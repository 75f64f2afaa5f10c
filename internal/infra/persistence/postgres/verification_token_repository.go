// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"caregate/internal/domain/entity"
	domainerrors "caregate/internal/domain/errors"
	"caregate/internal/domain/repository"
	"caregate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationTokenRepository implements the repository.VerificationTokenRepository interface.
type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository is the constructor for verificationTokenRepository.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{
		db: db,
	}
}

// CreateVerificationToken persists a new verification token.
func (repo *verificationTokenRepository) CreateVerificationToken(ctx context.Context, token *entity.VerificationToken) error {
	tokenM := fromVerificationTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindVerificationTokenByHash retrieves a token record by its stored hash.
func (repo *verificationTokenRepository) FindVerificationTokenByHash(ctx context.Context, tokenHash string) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification token by hash")
	}

	return toVerificationTokenDomain(&tokenM), nil
}

// DeleteVerificationToken removes a single token by its ID.
func (repo *verificationTokenRepository) DeleteVerificationToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VerificationTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete verification token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVerificationTokenNotFound
	}

	return nil
}

// DeleteVerificationTokensByUserID removes all tokens for a user.
func (repo *verificationTokenRepository) DeleteVerificationTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.VerificationTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete verification tokens by user ID")
	}

	return nil
}

// --- Mapper Functions ---

// toVerificationTokenDomain converts a GORM VerificationTokenModel to a domain entity.
func toVerificationTokenDomain(data *model.VerificationTokenModel) *entity.VerificationToken {
	if data == nil {
		return nil
	}

	return &entity.VerificationToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromVerificationTokenDomain converts a domain entity to a GORM VerificationTokenModel.
func fromVerificationTokenDomain(data *entity.VerificationToken) *model.VerificationTokenModel {
	if data == nil {
		return nil
	}

	return &model.VerificationTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

package postgres

import (
	"context"
	"time"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	"horizon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// actionTokenRepository implements the domain.ActionTokenRepository interface using GORM.
type actionTokenRepository struct {
	db *gorm.DB
}

// NewActionTokenRepository is the constructor for actionTokenRepository.
func NewActionTokenRepository(db *gorm.DB) repository.ActionTokenRepository {
	return &actionTokenRepository{
		db: db,
	}
}

// CreateActionToken persists a new single-use token.
func (repo *actionTokenRepository) CreateActionToken(ctx context.Context, token *entity.ActionToken) error {
	tokenM := fromActionTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create action token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// ConsumeActionToken atomically deletes the token and returns the deleted row.
// DELETE ... RETURNING makes the destroy-then-inspect order race-free: of two
// concurrent consumers only one gets the row back, and the other sees
// ErrActionTokenNotFound.
func (repo *actionTokenRepository) ConsumeActionToken(ctx context.Context, tokenHash string, purpose entity.TokenPurpose) (*entity.ActionToken, error) {
	var tokenM model.ActionTokenModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token_hash = ? AND purpose = ?", tokenHash, string(purpose)).
		Delete(&tokenM)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume action token")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrActionTokenNotFound
	}

	// The row is already gone; expiry only decides which error the caller sees.
	if time.Now().After(tokenM.ExpiresAt) {
		return nil, repository.ErrActionTokenExpired
	}

	return toActionTokenDomain(&tokenM), nil
}

// DeleteActionTokensByUserID removes all outstanding tokens of one purpose for a user.
func (repo *actionTokenRepository) DeleteActionTokensByUserID(ctx context.Context, userID uuid.UUID, purpose entity.TokenPurpose) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.ActionTokenModel{}, "user_id = ? AND purpose = ?", userID, string(purpose)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete action tokens by user id")
	}

	return nil
}

// DeleteExpiredActionTokens removes all expired tokens from the database.
func (repo *actionTokenRepository) DeleteExpiredActionTokens(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.ActionTokenModel{}, "expires_at <= ?", time.Now())
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired action tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toActionTokenDomain(data *model.ActionTokenModel) *entity.ActionToken {
	if data == nil {
		return nil
	}

	return &entity.ActionToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		Purpose:   entity.TokenPurpose(data.Purpose),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromActionTokenDomain(data *entity.ActionToken) *model.ActionTokenModel {
	if data == nil {
		return nil
	}

	return &model.ActionTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		Purpose:   string(data.Purpose),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

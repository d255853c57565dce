package persistent

import (
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(userID, token string, expiresAt time.Time) error
	GetByToken(token string) (*entity.RefreshToken, error)
	Delete(token string) error
	DeleteAllForUser(userID string) error
	DeleteExpired() error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(userID, token string, expiresAt time.Time) error {
	return r.db.Create(&model.RefreshTokenModel{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *tokenRepository) GetByToken(token string) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshTokenModel
	if err := r.db.Where("token = ?", token).First(&tokenModel).Error; err != nil {
		return nil, err
	}
	return ToRefreshTokenEntity(&tokenModel), nil
}

// Delete is idempotent: revoking an absent token is not an error.
func (r *tokenRepository) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&model.RefreshTokenModel{}).Error
}

func (r *tokenRepository) DeleteAllForUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error
}

func (r *tokenRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&model.RefreshTokenModel{}).Error
}

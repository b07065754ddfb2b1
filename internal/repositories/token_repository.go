package repositories

import (
	"errors"

	"gorm.io/gorm"

	"reviewboard/internal/models"
)

var ErrTokenNotFound = errors.New("auth token not found")

type TokenRepository interface {
	FindByKey(db *gorm.DB, key string) (*models.AuthToken, error)
	FindByUser(db *gorm.DB, userID string) (*models.AuthToken, error)
	GetOrCreate(db *gorm.DB, userID string) (*models.AuthToken, error)
}

type TokenRepositoryImpl struct{}

func NewTokenRepository() TokenRepository {
	return &TokenRepositoryImpl{}
}

func (r *TokenRepositoryImpl) FindByKey(db *gorm.DB, key string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := db.First(&token, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepositoryImpl) FindByUser(db *gorm.DB, userID string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := db.First(&token, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// GetOrCreate returns the user's existing token or creates one. The unique
// index on user_id arbitrates concurrent issuance: the losing insert
// re-fetches the row the winner created.
func (r *TokenRepositoryImpl) GetOrCreate(db *gorm.DB, userID string) (*models.AuthToken, error) {
	token, err := r.FindByUser(db, userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return nil, err
	}

	fresh := &models.AuthToken{
		UserID: userID,
		Key:    NewTokenKey(),
	}
	if err := db.Create(fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByUser(db, userID)
		}
		return nil, err
	}
	return fresh, nil
}

package repositories

import (
	"redakce-cms/models"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(token *models.ApiToken) error
	GetByToken(token string) (*models.ApiToken, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *models.ApiToken) error {
	return r.db.Create(token).Error
}

func (r *tokenRepository) GetByToken(token string) (*models.ApiToken, error) {
	var t models.ApiToken
	err := r.db.Preload("User").Where("token = ?", token).First(&t).Error
	return &t, err
}

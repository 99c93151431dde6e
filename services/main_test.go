package services_test

import (
	"testing"

	"redakce-cms/config"
	"redakce-cms/models"
	"redakce-cms/repositories"
	"redakce-cms/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newUser(t *testing.T, db *gorm.DB, username string, role models.UserRole, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newArticleService(db *gorm.DB) services.ArticleService {
	return services.NewArticleService(
		repositories.NewArticleRepository(db),
		repositories.NewLikeRepository(db),
		services.NewSanitizer(),
	)
}

func newEngagementService(db *gorm.DB) services.EngagementService {
	return services.NewEngagementService(
		repositories.NewArticleRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewLikeRepository(db),
		repositories.NewFollowRepository(db),
		repositories.NewUserRepository(db),
	)
}

func principal(u *models.User) models.Principal {
	return models.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

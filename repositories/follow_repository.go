package repositories

import (
	"errors"

	"redakce-cms/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Toggle(followerID, followedID uint) (bool, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	CountFollowers(userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(followerID, followedID uint) (bool, error) {
	following := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(&models.UserFollow{FollowerID: followerID, FollowedID: followedID}).
			Delete(&models.UserFollow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			following = false
			return nil
		}
		err := tx.Create(&models.UserFollow{FollowerID: followerID, FollowedID: followedID}).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				following = true
				return nil
			}
			return err
		}
		following = true
		return nil
	})
	return following, err
}

func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserFollow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserFollow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

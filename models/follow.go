package models

import "time"

type UserFollow struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	FollowerID uint      `json:"follower_id" gorm:"not null;uniqueIndex:idx_user_follow"`
	FollowedID uint      `json:"followed_id" gorm:"not null;uniqueIndex:idx_user_follow"`
	CreatedAt  time.Time `json:"created_at"`
}

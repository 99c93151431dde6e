package models

import "time"

// ApiToken is an opaque bearer credential for the JSON API. Tokens have
// no expiry and are never revoked; a user may hold any number of them.
type ApiToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:64;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

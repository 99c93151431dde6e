package models

import (
	"time"
)

type User struct {
	ID       uint     `json:"id" gorm:"primarykey"`
	Username string   `json:"username" gorm:"uniqueIndex;not null"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Password string   `json:"-" gorm:"not null"`
	Role     UserRole `json:"role" gorm:"default:'user'"`

	DisplayName string     `json:"display_name"`
	Bio         string     `json:"bio"`
	BirthDate   *time.Time `json:"birth_date"`
	Gender      string     `json:"gender"`
	AvatarPath  string     `json:"avatar_path"`
	Theme       string     `json:"theme" gorm:"default:'light'"`

	ForcePasswordChange  bool       `json:"force_password_change" gorm:"default:false"`
	TempPasswordIssuedAt *time.Time `json:"temp_password_issued_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

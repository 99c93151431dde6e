package models

import (
	"time"
)

type Article struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Perex     string    `json:"perex" gorm:"size:500"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	AuthorID uint `json:"author_id" gorm:"not null;index"`
	Author   User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`

	Comments []Comment     `json:"comments,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Likes    []ArticleLike `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

package models

import "time"

// Like rows carry no state beyond their existence: the row present
// means "liked". The composite unique indexes are the safeguard that
// keeps concurrent toggles at one row per (user, target) pair.

type ArticleLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_like"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_like"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_comment_like"`
	CommentID uint      `json:"comment_id" gorm:"not null;uniqueIndex:idx_comment_like"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentReplyLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_reply_like"`
	ReplyID   uint      `json:"reply_id" gorm:"not null;uniqueIndex:idx_reply_like"`
	CreatedAt time.Time `json:"created_at"`
}

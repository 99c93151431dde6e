package models

import "time"

// MaxCommentRunes caps comment and reply content; longer input is
// silently truncated, not rejected.
const MaxCommentRunes = 2000

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Content   string    `json:"content" gorm:"size:2000;not null"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`

	Replies []CommentReply `json:"replies,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	Likes   []CommentLike  `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

type CommentReply struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Content   string    `json:"content" gorm:"size:2000;not null"`
	CommentID uint      `json:"comment_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`

	Likes []CommentReplyLike `json:"-" gorm:"foreignKey:ReplyID;constraint:OnDelete:CASCADE"`
}

package repositories

import (
	"errors"

	"redakce-cms/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	ToggleArticleLike(userID, articleID uint) (bool, error)
	ToggleCommentLike(userID, commentID uint) (bool, error)
	ToggleReplyLike(userID, replyID uint) (bool, error)
	CountArticleLikes(articleID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// toggle deletes the row matching cond; when nothing was deleted it
// inserts insert instead. The composite unique index on the like table
// is what keeps two concurrent inserts from producing two rows; a
// duplicate-key failure therefore means another request already liked
// and is reported as liked, not as an error.
func (r *likeRepository) toggle(cond interface{}, insert func(tx *gorm.DB) error, model interface{}) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(cond).Delete(model)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		if err := insert(tx); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *likeRepository) ToggleArticleLike(userID, articleID uint) (bool, error) {
	return r.toggle(
		&models.ArticleLike{UserID: userID, ArticleID: articleID},
		func(tx *gorm.DB) error {
			return tx.Create(&models.ArticleLike{UserID: userID, ArticleID: articleID}).Error
		},
		&models.ArticleLike{},
	)
}

func (r *likeRepository) ToggleCommentLike(userID, commentID uint) (bool, error) {
	return r.toggle(
		&models.CommentLike{UserID: userID, CommentID: commentID},
		func(tx *gorm.DB) error {
			return tx.Create(&models.CommentLike{UserID: userID, CommentID: commentID}).Error
		},
		&models.CommentLike{},
	)
}

func (r *likeRepository) ToggleReplyLike(userID, replyID uint) (bool, error) {
	return r.toggle(
		&models.CommentReplyLike{UserID: userID, ReplyID: replyID},
		func(tx *gorm.DB) error {
			return tx.Create(&models.CommentReplyLike{UserID: userID, ReplyID: replyID}).Error
		},
		&models.CommentReplyLike{},
	)
}

func (r *likeRepository) CountArticleLikes(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleLike{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}

package repositories

import (
	"redakce-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetByIDWithComments(id uint) (*models.Article, error)
	GetRecent(limit int) ([]models.ArticleListItem, error)
	Update(article *models.Article) error
	Delete(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetByIDWithComments(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at asc")
		}).
		Preload("Comments.Author").
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment_replies.created_at asc")
		}).
		Preload("Comments.Replies.Author").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetRecent(limit int) ([]models.ArticleListItem, error) {
	var items []models.ArticleListItem
	err := r.db.Model(&models.Article{}).
		Select("id, title, created_at, author_id").
		Order("created_at desc").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete removes the article together with its comments, replies and
// like rows in one transaction, so the sqlite test database behaves the
// same as postgres with its FK cascades.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("article_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			var replyIDs []uint
			if err := tx.Model(&models.CommentReply{}).Where("comment_id IN ?", commentIDs).Pluck("id", &replyIDs).Error; err != nil {
				return err
			}
			if len(replyIDs) > 0 {
				if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.CommentReplyLike{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentReply{}).Error; err != nil {
				return err
			}
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}

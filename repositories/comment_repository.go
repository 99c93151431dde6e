package repositories

import (
	"redakce-cms/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	CreateReply(reply *models.CommentReply) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetReplyByID(id uint) (*models.CommentReply, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) CreateReply(reply *models.CommentReply) error {
	return r.db.Create(reply).Error
}

func (r *commentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	return &comment, err
}

func (r *commentRepository) GetReplyByID(id uint) (*models.CommentReply, error) {
	var reply models.CommentReply
	err := r.db.First(&reply, id).Error
	return &reply, err
}

package services

import (
	"errors"
	"strings"

	"redakce-cms/models"
	"redakce-cms/repositories"

	"gorm.io/gorm"
)

type EngagementService interface {
	ToggleArticleLike(userID, articleID uint) (bool, error)
	ToggleCommentLike(userID, commentID uint) (bool, error)
	ToggleReplyLike(userID, replyID uint) (bool, error)
	ToggleFollow(followerID uint, username string) (bool, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	FollowerCount(userID uint) (int64, error)
	AddComment(userID, articleID uint, content string) (*models.Comment, error)
	AddReply(userID, commentID uint, content string) (*models.CommentReply, error)
}

type engagementService struct {
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
	followRepo  repositories.FollowRepository
	userRepo    repositories.UserRepository
}

func NewEngagementService(
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
) EngagementService {
	return &engagementService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
		userRepo:    userRepo,
	}
}

func (s *engagementService) ToggleArticleLike(userID, articleID uint) (bool, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.E(models.ErrNotFound, "Článek nenalezen.")
		}
		return false, err
	}
	return s.likeRepo.ToggleArticleLike(userID, articleID)
}

func (s *engagementService) ToggleCommentLike(userID, commentID uint) (bool, error) {
	if _, err := s.commentRepo.GetCommentByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.E(models.ErrNotFound, "Komentář nenalezen.")
		}
		return false, err
	}
	return s.likeRepo.ToggleCommentLike(userID, commentID)
}

func (s *engagementService) ToggleReplyLike(userID, replyID uint) (bool, error) {
	if _, err := s.commentRepo.GetReplyByID(replyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.E(models.ErrNotFound, "Odpověď nenalezena.")
		}
		return false, err
	}
	return s.likeRepo.ToggleReplyLike(userID, replyID)
}

// ToggleFollow flips the follow edge towards username. Following
// yourself is a no-op: no edge is created and no error is raised.
func (s *engagementService) ToggleFollow(followerID uint, username string) (bool, error) {
	followed, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return false, models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}
	if followed.ID == followerID {
		return false, nil
	}
	return s.followRepo.Toggle(followerID, followed.ID)
}

func (s *engagementService) IsFollowing(followerID, followedID uint) (bool, error) {
	return s.followRepo.IsFollowing(followerID, followedID)
}

func (s *engagementService) FollowerCount(userID uint) (int64, error) {
	return s.followRepo.CountFollowers(userID)
}

func (s *engagementService) AddComment(userID, articleID uint, content string) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.E(models.ErrNotFound, "Článek nenalezen.")
		}
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.E(models.ErrValidation, "Komentář nesmí být prázdný.")
	}

	comment := &models.Comment{
		Content:   truncateRunes(content, models.MaxCommentRunes),
		ArticleID: articleID,
		AuthorID:  userID,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *engagementService) AddReply(userID, commentID uint, content string) (*models.CommentReply, error) {
	if _, err := s.commentRepo.GetCommentByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.E(models.ErrNotFound, "Komentář nenalezen.")
		}
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.E(models.ErrValidation, "Odpověď nesmí být prázdná.")
	}

	reply := &models.CommentReply{
		Content:   truncateRunes(content, models.MaxCommentRunes),
		CommentID: commentID,
		AuthorID:  userID,
	}
	if err := s.commentRepo.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// truncateRunes cuts silently; over-long comments are stored, not
// rejected.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

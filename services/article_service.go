package services

import (
	"errors"
	"strings"

	"redakce-cms/models"
	"redakce-cms/repositories"

	"gorm.io/gorm"
)

// RecentArticleLimit caps the article listing; there is no pagination
// cursor on this endpoint.
const RecentArticleLimit = 50

type ArticleService interface {
	Create(req models.ArticleRequest, p models.Principal) (*models.Article, error)
	Get(id uint, p models.Principal) (*models.Article, error)
	List(p models.Principal) ([]models.ArticleListItem, error)
	Update(id uint, req models.ArticleRequest, p models.Principal) (*models.Article, error)
	Delete(id uint, p models.Principal) error
	Detail(id uint) (*models.Article, int64, error)
	Recent() ([]models.ArticleListItem, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	likeRepo    repositories.LikeRepository
	sanitizer   Sanitizer
}

func NewArticleService(articleRepo repositories.ArticleRepository, likeRepo repositories.LikeRepository, sanitizer Sanitizer) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		likeRepo:    likeRepo,
		sanitizer:   sanitizer,
	}
}

func (s *articleService) Create(req models.ArticleRequest, p models.Principal) (*models.Article, error) {
	if !p.Can(models.ActionArticleCreate) {
		return nil, models.E(models.ErrForbidden, "Nemáš oprávnění přidávat články.")
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, models.E(models.ErrValidation, "title a content jsou povinné.")
	}

	article := &models.Article{
		Title:    title,
		Perex:    s.sanitizer.Clean(strings.TrimSpace(req.Perex)),
		Content:  s.sanitizer.Clean(content),
		AuthorID: p.UserID,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) Get(id uint, p models.Principal) (*models.Article, error) {
	if !p.Can(models.ActionArticleRead) {
		return nil, models.E(models.ErrForbidden, "Nemáš oprávnění číst články přes API.")
	}
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.E(models.ErrNotFound, "Článek nenalezen.")
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) List(p models.Principal) ([]models.ArticleListItem, error) {
	if !p.Can(models.ActionArticleList) {
		return nil, models.E(models.ErrForbidden, "Nemáš oprávnění číst články přes API.")
	}
	return s.articleRepo.GetRecent(RecentArticleLimit)
}

// Update lets the author edit their own article, and moderators/admins
// edit anyone's; other editors get a 403 even with valid credentials.
func (s *articleService) Update(id uint, req models.ArticleRequest, p models.Principal) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.E(models.ErrNotFound, "Článek nenalezen.")
		}
		return nil, err
	}

	if article.AuthorID != p.UserID && !p.Can(models.ActionArticleManageAny) {
		return nil, models.E(models.ErrForbidden, "Nemáš oprávnění upravit tento článek.")
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, models.E(models.ErrValidation, "title a content jsou povinné.")
	}

	article.Title = title
	article.Perex = s.sanitizer.Clean(strings.TrimSpace(req.Perex))
	article.Content = s.sanitizer.Clean(content)

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) Delete(id uint, p models.Principal) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.E(models.ErrNotFound, "Článek nenalezen.")
		}
		return err
	}

	if article.AuthorID != p.UserID && !p.Can(models.ActionArticleManageAny) {
		return models.E(models.ErrForbidden, "Nemáš oprávnění smazat tento článek.")
	}

	return s.articleRepo.Delete(id)
}

// Detail backs the article page: the article with its comment tree in
// chronological order plus the like count.
func (s *articleService) Detail(id uint) (*models.Article, int64, error) {
	article, err := s.articleRepo.GetByIDWithComments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, models.E(models.ErrNotFound, "Článek nenalezen.")
		}
		return nil, 0, err
	}
	likes, err := s.likeRepo.CountArticleLikes(id)
	if err != nil {
		return nil, 0, err
	}
	return article, likes, nil
}

func (s *articleService) Recent() ([]models.ArticleListItem, error) {
	return s.articleRepo.GetRecent(RecentArticleLimit)
}

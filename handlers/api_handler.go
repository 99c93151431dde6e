package handlers

import (
	"strconv"

	"redakce-cms/helper"
	"redakce-cms/middleware"
	"redakce-cms/models"
	"redakce-cms/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIHandler serves the JSON surface the desktop clients talk to.
type APIHandler struct {
	authService    services.AuthService
	articleService services.ArticleService
	uploadService  services.UploadService
	Helper         *helper.HTTPHelper
	log            *zap.Logger
}

func NewAPIHandler(
	authService services.AuthService,
	articleService services.ArticleService,
	uploadService services.UploadService,
	log *zap.Logger,
) *APIHandler {
	return &APIHandler{
		authService:    authService,
		articleService: articleService,
		uploadService:  uploadService,
		Helper:         &helper.HTTPHelper{},
		log:            log,
	}
}

func (h *APIHandler) Login(c *gin.Context) {
	var req models.APILoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendUnauthorized(c, "Špatné jméno nebo heslo.")
		return
	}

	resp, err := h.authService.LoginAPI(req.Username, req.Password)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.Helper.SendOK(c, gin.H{
		"token":    resp.Token,
		"role":     resp.Role,
		"username": resp.Username,
	})
}

func (h *APIHandler) CreateArticle(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "title a content jsou povinné.")
		return
	}

	article, err := h.articleService.Create(req, p)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.log.Info("article created", zap.Uint("id", article.ID), zap.String("author", p.Username))
	h.Helper.SendOK(c, gin.H{"id": article.ID})
}

func (h *APIHandler) ListArticles(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	items, err := h.articleService.List(p)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}
	if items == nil {
		items = []models.ArticleListItem{}
	}

	h.Helper.SendOK(c, gin.H{"articles": items})
}

func (h *APIHandler) GetArticle(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFound(c, "Článek nenalezen.")
		return
	}

	article, err := h.articleService.Get(uint(id), p)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.Helper.SendOK(c, gin.H{"article": models.ArticleDetail{
		ID:        article.ID,
		Title:     article.Title,
		Perex:     article.Perex,
		Content:   article.Content,
		AuthorID:  article.AuthorID,
		CreatedAt: article.CreatedAt,
	}})
}

func (h *APIHandler) UpdateArticle(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFound(c, "Článek nenalezen.")
		return
	}

	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "title a content jsou povinné.")
		return
	}

	article, err := h.articleService.Update(uint(id), req, p)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.Helper.SendOK(c, gin.H{"id": article.ID})
}

func (h *APIHandler) DeleteArticle(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFound(c, "Článek nenalezen.")
		return
	}

	if err := h.articleService.Delete(uint(id), p); err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.log.Info("article deleted", zap.Uint64("id", id), zap.String("user", p.Username))
	h.Helper.SendOK(c, gin.H{})
}

func (h *APIHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "Chybí soubor.")
		return
	}

	name, err := h.uploadService.ImageName(file.Filename)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	if err := c.SaveUploadedFile(file, h.uploadService.DiskPath(name)); err != nil {
		h.log.Error("upload failed", zap.Error(err))
		h.Helper.SendBadRequest(c, "Soubor se nepodařilo uložit.")
		return
	}

	h.Helper.SendOK(c, gin.H{"url": h.uploadService.PublicURL(name)})
}

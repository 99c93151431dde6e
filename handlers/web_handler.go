package handlers

import (
	"strconv"

	"redakce-cms/helper"
	"redakce-cms/middleware"
	"redakce-cms/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebHandler serves the public pages. Templates are outside this
// service; the handlers return the data the templates consume.
type WebHandler struct {
	articleService services.ArticleService
	authService    services.AuthService
	engagement     services.EngagementService
	Helper         *helper.HTTPHelper
	log            *zap.Logger
}

func NewWebHandler(
	articleService services.ArticleService,
	authService services.AuthService,
	engagement services.EngagementService,
	log *zap.Logger,
) *WebHandler {
	return &WebHandler{
		articleService: articleService,
		authService:    authService,
		engagement:     engagement,
		Helper:         &helper.HTTPHelper{},
		log:            log,
	}
}

func (h *WebHandler) Index(c *gin.Context) {
	articles, err := h.articleService.Recent()
	if err != nil {
		h.log.Error("index listing failed", zap.Error(err))
		h.Helper.SendBadRequest(c, "Články se nepodařilo načíst.")
		return
	}
	h.Helper.SendOK(c, gin.H{"articles": articles})
}

func (h *WebHandler) ArticleDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFound(c, "Článek nenalezen.")
		return
	}

	article, likes, err := h.articleService.Detail(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.Helper.SendOK(c, gin.H{"article": article, "likes": likes})
}

func (h *WebHandler) PublicProfile(c *gin.Context) {
	user, err := h.authService.GetUserByUsername(c.Param("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	followers, err := h.engagement.FollowerCount(user.ID)
	if err != nil {
		h.log.Error("follower count failed", zap.Error(err))
		followers = 0
	}

	following := false
	if p, ok := middleware.CurrentPrincipal(c); ok && p.UserID != user.ID {
		following, _ = h.engagement.IsFollowing(p.UserID, user.ID)
	}

	h.Helper.SendOK(c, gin.H{
		"username":     user.Username,
		"display_name": user.DisplayName,
		"bio":          user.Bio,
		"avatar_path":  user.AvatarPath,
		"role":         user.Role,
		"followers":    followers,
		"following":    following,
	})
}

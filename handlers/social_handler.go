package handlers

import (
	"fmt"
	"strconv"

	"redakce-cms/helper"
	"redakce-cms/middleware"
	"redakce-cms/models"
	"redakce-cms/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SocialHandler serves the like/follow toggles and comment forms; every
// action redirects back to the page it came from.
type SocialHandler struct {
	engagement services.EngagementService
	Helper     *helper.HTTPHelper
	log        *zap.Logger
}

func NewSocialHandler(engagement services.EngagementService, log *zap.Logger) *SocialHandler {
	return &SocialHandler{
		engagement: engagement,
		Helper:     &helper.HTTPHelper{},
		log:        log,
	}
}

func backTarget(c *gin.Context, fallback string) string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return ref
	}
	return fallback
}

func (h *SocialHandler) LikeArticle(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.Redirect(c, "/")
		return
	}

	target := fmt.Sprintf("/clanek/%d", id)
	if _, err := h.engagement.ToggleArticleLike(p.UserID, uint(id)); err != nil {
		h.Helper.RedirectWithError(c, "/", err.Error())
		return
	}
	h.Helper.Redirect(c, backTarget(c, target))
}

func (h *SocialHandler) AddComment(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.Redirect(c, "/")
		return
	}

	target := fmt.Sprintf("/clanek/%d", id)

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, target, "Komentář nesmí být prázdný.")
		return
	}

	if _, err := h.engagement.AddComment(p.UserID, uint(id), form.Content); err != nil {
		h.Helper.RedirectWithError(c, target, err.Error())
		return
	}
	h.Helper.Redirect(c, target)
}

func (h *SocialHandler) LikeComment(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.Redirect(c, "/")
		return
	}

	if _, err := h.engagement.ToggleCommentLike(p.UserID, uint(id)); err != nil {
		h.Helper.RedirectWithError(c, "/", err.Error())
		return
	}
	h.Helper.Redirect(c, backTarget(c, "/"))
}

func (h *SocialHandler) ReplyToComment(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.Redirect(c, "/")
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, backTarget(c, "/"), "Odpověď nesmí být prázdná.")
		return
	}

	if _, err := h.engagement.AddReply(p.UserID, uint(id), form.Content); err != nil {
		h.Helper.RedirectWithError(c, backTarget(c, "/"), err.Error())
		return
	}
	h.Helper.Redirect(c, backTarget(c, "/"))
}

func (h *SocialHandler) LikeReply(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.Redirect(c, "/")
		return
	}

	if _, err := h.engagement.ToggleReplyLike(p.UserID, uint(id)); err != nil {
		h.Helper.RedirectWithError(c, "/", err.Error())
		return
	}
	h.Helper.Redirect(c, backTarget(c, "/"))
}

func (h *SocialHandler) ToggleFollow(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)
	username := c.Param("username")

	target := "/u/" + username
	if _, err := h.engagement.ToggleFollow(p.UserID, username); err != nil {
		h.Helper.RedirectWithError(c, "/", err.Error())
		return
	}
	h.Helper.Redirect(c, target)
}

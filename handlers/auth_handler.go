package handlers

import (
	"redakce-cms/helper"
	"redakce-cms/middleware"
	"redakce-cms/models"
	"redakce-cms/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler covers the session-cookie side: login, registration,
// password change and profile management. Form pages themselves are
// rendered by the excluded template layer; actions redirect the way
// the original does.
type AuthHandler struct {
	authService   services.AuthService
	avatarUploads services.UploadService
	Helper        *helper.HTTPHelper
	log           *zap.Logger
}

func NewAuthHandler(authService services.AuthService, avatarUploads services.UploadService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		avatarUploads: avatarUploads,
		Helper:        &helper.HTTPHelper{},
		log:           log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, "/login", "Špatné jméno nebo heslo.")
		return
	}

	user, err := h.authService.LoginWeb(form.Username, form.Password)
	if err != nil {
		h.Helper.RedirectWithError(c, "/login", err.Error())
		return
	}

	if err := middleware.IssueSession(c, user, false); err != nil {
		h.log.Error("session issue failed", zap.Error(err))
		h.Helper.RedirectWithError(c, "/login", "Přihlášení se nezdařilo.")
		return
	}

	if user.ForcePasswordChange {
		h.Helper.Redirect(c, "/change-password")
		return
	}
	h.Helper.Redirect(c, "/")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, "/register", "Vyplň všechna pole.")
		return
	}

	user, err := h.authService.Register(form)
	if err != nil {
		h.Helper.RedirectWithError(c, "/register", err.Error())
		return
	}

	if err := middleware.IssueSession(c, user, false); err != nil {
		h.log.Error("session issue failed", zap.Error(err))
		h.Helper.RedirectWithError(c, "/login", "Přihlášení se nezdařilo.")
		return
	}
	h.Helper.Redirect(c, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	h.Helper.Redirect(c, "/")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	var form models.ChangePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, "/change-password", "Vyplň všechna pole.")
		return
	}

	if err := h.authService.ChangePassword(p.UserID, form); err != nil {
		h.Helper.RedirectWithError(c, "/change-password", err.Error())
		return
	}
	h.Helper.Redirect(c, "/")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	user, err := h.authService.GetUserByID(p.UserID)
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}
	h.Helper.SendOK(c, gin.H{"user": user})
}

func (h *AuthHandler) EditProfile(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	var form models.ProfileEditForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, "/profile", "Neplatná data profilu.")
		return
	}

	if err := h.authService.UpdateProfile(p.UserID, form); err != nil {
		h.Helper.RedirectWithError(c, "/profile", err.Error())
		return
	}
	h.Helper.Redirect(c, "/profile")
}

func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		h.Helper.RedirectWithError(c, "/profile", "Chybí soubor.")
		return
	}

	name, err := h.avatarUploads.ImageName(file.Filename)
	if err != nil {
		h.Helper.RedirectWithError(c, "/profile", err.Error())
		return
	}

	if err := c.SaveUploadedFile(file, h.avatarUploads.DiskPath(name)); err != nil {
		h.log.Error("avatar upload failed", zap.Error(err))
		h.Helper.RedirectWithError(c, "/profile", "Soubor se nepodařilo uložit.")
		return
	}

	if err := h.authService.SetAvatar(p.UserID, h.avatarUploads.PublicURL(name)); err != nil {
		h.Helper.RedirectWithError(c, "/profile", err.Error())
		return
	}
	h.Helper.Redirect(c, "/profile")
}

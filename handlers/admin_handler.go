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

type AdminHandler struct {
	adminService services.AdminService
	Helper       *helper.HTTPHelper
	log          *zap.Logger
}

func NewAdminHandler(adminService services.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		Helper:       &helper.HTTPHelper{},
		log:          log,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.RedirectWithError(c, "/admin/login", "Neplatné admin přihlášení.")
		return
	}

	user, err := h.adminService.Login(form.Username, form.Password)
	if err != nil {
		h.Helper.RedirectWithError(c, "/admin/login", err.Error())
		return
	}

	if err := middleware.IssueSession(c, user, true); err != nil {
		h.log.Error("admin session issue failed", zap.Error(err))
		h.Helper.RedirectWithError(c, "/admin/login", "Přihlášení se nezdařilo.")
		return
	}

	h.log.Info("admin logged in", zap.String("username", user.Username))
	h.Helper.Redirect(c, "/admin/users")
}

func (h *AdminHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	h.Helper.Redirect(c, "/admin/login")
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}
	h.Helper.SendOK(c, gin.H{"users": users})
}

// ResetPassword returns the plaintext temporary password once; only the
// hash is stored.
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendNotFound(c, "Uživatel nenalezen.")
		return
	}

	temp, err := h.adminService.ResetPassword(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err, err.Error())
		return
	}

	h.log.Info("password reset", zap.Uint64("user_id", id))
	h.Helper.SendOK(c, gin.H{"user_id": id, "temp_password": temp})
}

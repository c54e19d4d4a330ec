package handlers

import (
	"strconv"

	"article-review-cms/helper"
	"article-review-cms/middleware"
	"article-review-cms/models"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: httpHelper}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		h.Helper.SendForbidden(c)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", models.ProfileResponse{
		ID:   user.ID,
		Role: user.Role.String(),
		User: *user,
	})
}

// paramID parses a positive numeric path parameter. Anything else can never
// name a stored row and is reported as not found.
func paramID(c *gin.Context, h *helper.HTTPHelper, name, notFoundMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		h.SendError(c, models.NotFound(notFoundMessage))
		return 0, false
	}
	return uint(id), true
}

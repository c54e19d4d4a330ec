package handlers

import (
	"article-review-cms/helper"
	"article-review-cms/middleware"
	"article-review-cms/models"
	"article-review-cms/services"

	"github.com/gin-gonic/gin"
)

const messageUserNotFound = "User not found"

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, httpHelper *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: httpHelper}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageUserNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User loaded", user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageUserNotFound)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageUserNotFound)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id", messageUserNotFound)
	if !ok {
		return
	}

	var req models.ChangeUserStatusRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.ChangeStatus(c.Request.Context(), middleware.CurrentUser(c), id, models.UserRole(*req.UserStatus))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User status changed", user)
}
